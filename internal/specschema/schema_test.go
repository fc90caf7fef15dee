// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package specschema

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTypeStringsSplitsOnPipe(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single", "LINE", []string{"LINE"}},
		{"two aliases", "3DFACE|FACE3D", []string{"3DFACE", "FACE3D"}},
		{"trailing pipe ignored", "CIRCLE|", []string{"CIRCLE"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := TypeSpec{TypeString: tt.in}
			got := spec.TypeStrings()
			if len(got) != len(tt.want) {
				t.Fatalf("TypeStrings() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("TypeStrings()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

const sampleEntitiesXML = `<?xml version="1.0"?>
<Entities>
  <Entity Name="Line" TypeString="LINE" SubclassMarker="AcDbLine">
    <Field Name="P1" Type="Point" Code="10" />
    <Field Name="Thickness" Type="double" Code="39" DisableWritingDefault="true" />
    <WriteOrder>
      <WriteSpecificValue Code="100" Value="AcDbLine" />
      <WriteField Field="P1" />
      <WriteExtensionData />
    </WriteOrder>
  </Entity>
</Entities>`

func TestLoadEntities(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "EntitiesSpec.xml")
	writeFile(t, path, sampleEntitiesXML)

	spec, err := LoadEntities(path)
	if err != nil {
		t.Fatalf("LoadEntities() error = %v", err)
	}
	if len(spec.Types) != 1 {
		t.Fatalf("len(spec.Types) = %d, want 1", len(spec.Types))
	}
	line := spec.Types[0]
	if line.Name != "Line" || line.TypeString != "LINE" {
		t.Errorf("line = %+v", line)
	}
	if len(line.Fields) != 2 {
		t.Fatalf("len(line.Fields) = %d, want 2", len(line.Fields))
	}
	if line.Fields[1].Name != "Thickness" || !line.Fields[1].DisableWritingDefault {
		t.Errorf("Thickness field = %+v", line.Fields[1])
	}
	if line.WriteOrder == nil || len(line.WriteOrder.Directives) != 3 {
		t.Fatalf("WriteOrder = %+v", line.WriteOrder)
	}
	if local := line.WriteOrder.Directives[0].XMLName.Local; local != "WriteSpecificValue" {
		t.Errorf("Directives[0].XMLName.Local = %q, want WriteSpecificValue", local)
	}
}

const sampleHeaderVariablesXML = `<?xml version="1.0"?>
<HeaderVariables>
  <Variable Name="$ACADVER" Code="1" Type="string" />
  <Variable Name="$HANDSEED" Code="5" Type="string" MinVersion="R13" />
</HeaderVariables>`

func TestLoadHeaderVariables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "HeaderVariables.xml")
	writeFile(t, path, sampleHeaderVariablesXML)

	spec, err := LoadHeaderVariables(path)
	if err != nil {
		t.Fatalf("LoadHeaderVariables() error = %v", err)
	}
	if len(spec.Variables) != 2 {
		t.Fatalf("len(spec.Variables) = %d, want 2", len(spec.Variables))
	}
	if spec.Variables[1].MinVersion != "R13" {
		t.Errorf("Variables[1].MinVersion = %q, want R13", spec.Variables[1].MinVersion)
	}
}

func TestLoadEntitiesMissingFile(t *testing.T) {
	if _, err := LoadEntities(filepath.Join(t.TempDir(), "nope.xml")); err == nil {
		t.Error("LoadEntities() on a missing file returned nil error")
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
