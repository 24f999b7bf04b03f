package javascript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZacxDev/blogsite/config"
	"github.com/evanw/esbuild/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashedName(t *testing.T) {
	hashes := map[string]string{}

	name, isMap, err := hashedName(api.OutputFile{Path: "/out/theme.js", Hash: "ab/cd"}, hashes)
	require.NoError(t, err)
	assert.False(t, isMap)
	assert.Equal(t, "theme_abcd.js", name)

	name, isMap, err = hashedName(api.OutputFile{Path: "/out/theme.js.map"}, hashes)
	require.NoError(t, err)
	assert.True(t, isMap)
	assert.Equal(t, "theme_abcd.js.map", name)
}

func TestHashedName_OrphanMap(t *testing.T) {
	_, _, err := hashedName(api.OutputFile{Path: "/out/other.js.map"}, map[string]string{})
	assert.Error(t, err)
}

func TestCompileScripts(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "theme.ts")
	require.NoError(t, os.WriteFile(src, []byte(`
const enabled: boolean = document.startViewTransition !== undefined
export function transition(): boolean { return enabled }
console.log(transition())
`), 0644))
	outDir := filepath.Join(dir, "assets")

	emitted, err := CompileScripts([]config.ScriptTarget{{Name: "theme", Source: src, OutDir: outDir}})
	require.NoError(t, err)
	require.Contains(t, emitted, "theme")
	assert.True(t, strings.HasPrefix(emitted["theme"], "/"))
	assert.False(t, strings.HasPrefix(emitted["theme"], "//"))

	files, err := os.ReadDir(outDir)
	require.NoError(t, err)
	var sawBundle, sawMap bool
	for _, f := range files {
		switch {
		case strings.HasSuffix(f.Name(), ".js.map"):
			sawMap = true
		case strings.HasSuffix(f.Name(), ".js"):
			sawBundle = true
			data, err := os.ReadFile(filepath.Join(outDir, f.Name()))
			require.NoError(t, err)
			assert.Contains(t, string(data), "//# sourceMappingURL="+f.Name()+".map")
		}
	}
	assert.True(t, sawBundle)
	assert.True(t, sawMap)
}

func TestCompileScripts_Errors(t *testing.T) {
	_, err := CompileScripts([]config.ScriptTarget{{Name: "theme"}})
	assert.Error(t, err)

	_, err = CompileScripts([]config.ScriptTarget{{Name: "theme", Source: "theme.ts"}})
	assert.Error(t, err)

	_, err = CompileScripts([]config.ScriptTarget{{Name: "missing", Source: filepath.Join(t.TempDir(), "nope.ts"), OutDir: t.TempDir()}})
	assert.Error(t, err)
}
