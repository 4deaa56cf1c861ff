// Package testutil provides shared test helpers for config files, Rime directories and page fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RimeDir is a config root prepared for a test.
type RimeDir struct {
	ConfigRoot     string
	Directory      string
	DictionaryPath string
	BackupPath     string
}

// SetupRimeDir creates {tmpDir}/config/Rime. When dictionary is not nil, flypy_user.txt is written with it.
func SetupRimeDir(t *testing.T, tmpDir string, dictionary *string) RimeDir {
	t.Helper()

	root := filepath.Join(tmpDir, "config")
	dir := filepath.Join(root, "Rime")
	require.NoError(t, os.MkdirAll(dir, 0755))

	rimeDir := RimeDir{
		ConfigRoot:     root,
		Directory:      dir,
		DictionaryPath: filepath.Join(dir, "flypy_user.txt"),
		BackupPath:     filepath.Join(dir, "flypy_user.txt.back"),
	}
	if dictionary != nil {
		require.NoError(t, os.WriteFile(rimeDir.DictionaryPath, []byte(*dictionary), 0644))
	}
	return rimeDir
}

// SetupTestConfig writes a config file pointing at configRoot and returns its path.
func SetupTestConfig(t *testing.T, tmpDir string, configRoot string, sectionLabel string) string {
	t.Helper()

	configContent := fmt.Sprintf(`rime:
  config_root: %s
merge:
  section_label: %s
open_folder: false
`, configRoot, sectionLabel)

	cfgPath := filepath.Join(tmpDir, "flypysync.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// Row renders one line of a blob view the way the code-hosting page does.
func Row(n int, text string) string {
	return fmt.Sprintf(`<td id="LC%d" class="blob-code blob-code-inner js-file-line">%s</td>`, n, text)
}

// Page wraps rows into a table with line-number cells, numbered from 1.
func Page(rows ...string) string {
	var sb strings.Builder
	sb.WriteString("<html><body><table><tbody>\n")
	for i, row := range rows {
		fmt.Fprintf(&sb, `<tr><td id="L%d" class="blob-num js-line-number" data-line-number="%d"></td>`, i+1, i+1)
		sb.WriteString(row)
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</tbody></table></body></html>")
	return sb.String()
}

// AssertFile checks the contents of path, or that it does not exist when want is nil.
func AssertFile(t *testing.T, path string, want *string) {
	t.Helper()
	if want == nil {
		assert.NoFileExists(t, path)
		return
	}
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, *want, string(got))
}

func Ptr[T any](v T) *T {
	return &v
}
