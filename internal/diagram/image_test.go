package diagram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gocable/internal/cable"
)

func TestExportDiagrams(t *testing.T) {
	dir := t.TempDir()
	rootRes := solvedResult(t, cable.MethodRootFinding)
	fpRes := solvedResult(t, cable.MethodFixedPoint)

	for _, tt := range []struct {
		name   string
		file   string
		export func(*cable.Result, string) error
		res    *cable.Result
	}{
		{"profile", "profile.png", ExportProfileDiagram, rootRes},
		{"tension", "tension.png", ExportTensionDiagram, rootRes},
		{"convergence", "convergence.svg", ExportConvergenceDiagram, fpRes},
	} {
		path := filepath.Join(dir, tt.name, tt.file)
		if err := tt.export(tt.res, path); err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s: empty file", tt.name)
		}
	}
}

func TestExportUnknownExtensionFallsBackToPNG(t *testing.T) {
	dir := t.TempDir()
	res := solvedResult(t, cable.MethodRootFinding)
	if err := ExportProfileDiagram(res, filepath.Join(dir, "profile.bmp")); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "profile.bmp.png")); err != nil {
		t.Errorf("expected a .png fallback: %v", err)
	}
}
