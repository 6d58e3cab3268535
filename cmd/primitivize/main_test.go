package main

import "testing"

func TestOutputPNGPath(t *testing.T) {
	cases := map[string]string{
		"output.svg":     "output.png",
		"dir/result.svg": "dir/result.png",
		"noext":          "noext.png",
	}
	for in, want := range cases {
		if got := outputPNGPath(in); got != want {
			t.Fatalf("outputPNGPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFileAndFlagOptionsResolvesFromFlagsAlone(t *testing.T) {
	job, err := fileAndFlagOptions("", "target.png", "out.svg", 50, "any", 128, 4, 1, false, "")
	if err != nil {
		t.Fatalf("fileAndFlagOptions: %v", err)
	}
	if job.Input != "target.png" || job.Shapes != 50 || job.Workers != 4 {
		t.Fatalf("unexpected job: %+v", job)
	}
}

func TestFileAndFlagOptionsRejectsMissingInput(t *testing.T) {
	if _, err := fileAndFlagOptions("", "", "out.svg", 50, "any", 128, 4, 1, false, ""); err == nil {
		t.Fatal("expected error for missing input")
	}
}
