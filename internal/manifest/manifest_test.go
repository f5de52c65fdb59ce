package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidManifest(t *testing.T) {
	path := writeManifest(t, `{
		"new-dir-files": {
			"fighter/falcon/c03": ["body_c03.nutexb", "model_c03.numdlb"],
			"fighter/falcon/camera/c03": []
		}
	}`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.NewDirFiles, 2)
	assert.Equal(t, []string{"body_c03.nutexb", "model_c03.numdlb"}, doc.NewDirFiles["fighter/falcon/c03"])
	assert.Equal(t, []string{"fighter/falcon/c03", "fighter/falcon/camera/c03"}, doc.Keys())
}

func TestLoad_ExtraTopLevelKeysAllowed(t *testing.T) {
	path := writeManifest(t, `{
		"new-dir-files": {"fighter/falcon/c03": []},
		"share-to-vanilla": {"a": ["b"]}
	}`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.NewDirFiles, 1)
}

func TestLoad_MissingNewDirFiles(t *testing.T) {
	path := writeManifest(t, `{"share-to-vanilla": {}}`)

	_, err := Load(path)
	var malformed *MalformedManifestError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Error(), "new-dir-files")
}

func TestLoad_UnparsableJSON(t *testing.T) {
	path := writeManifest(t, `{"new-dir-files": `)

	_, err := Load(path)
	var malformed *MalformedManifestError
	assert.ErrorAs(t, err, &malformed)
}

func TestLoad_WrongValueShape(t *testing.T) {
	path := writeManifest(t, `{"new-dir-files": {"fighter/falcon/c03": "not-a-list"}}`)

	_, err := Load(path)
	var malformed *MalformedManifestError
	assert.ErrorAs(t, err, &malformed)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	var malformed *MalformedManifestError
	assert.ErrorAs(t, err, &malformed)
}
