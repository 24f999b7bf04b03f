package javascript

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ZacxDev/blogsite/config"
	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// CompileScripts bundles each theme script and writes content-hashed output
// next to a source map. It returns the public path of every bundle by target
// name.
func CompileScripts(targets []config.ScriptTarget) (map[string]string, error) {
	emitted := make(map[string]string, len(targets))
	for _, target := range targets {
		if target.Name == "" || target.Source == "" || target.OutDir == "" {
			return nil, errors.Errorf("script target %+v needs a name, a source and an out_dir", target)
		}

		result := api.Build(api.BuildOptions{
			EntryPoints:       []string{target.Source},
			Bundle:            true,
			MinifyWhitespace:  true,
			MinifyIdentifiers: true,
			MinifySyntax:      true,
			Engines: []api.Engine{
				{Name: api.EngineChrome, Version: "100"},
				{Name: api.EngineFirefox, Version: "100"},
				{Name: api.EngineSafari, Version: "15"},
				{Name: api.EngineEdge, Version: "100"},
			},
			Sourcemap: api.SourceMapExternal,
			Write:     false,
			Outdir:    target.OutDir,
		})

		if len(result.Errors) > 0 {
			for _, msg := range result.Errors {
				log.WithFields(log.Fields{"target": target.Name, "source": target.Source}).Error(msg.Text)
			}
			return nil, errors.Errorf("bundling %s failed with %d error(s)", target.Name, len(result.Errors))
		}

		if err := os.MkdirAll(target.OutDir, os.ModePerm); err != nil {
			return nil, errors.WithStack(err)
		}

		// Bundles first so each source map can find its bundle's hash
		var regularFiles []api.OutputFile
		var mapFiles []api.OutputFile

		for _, out := range result.OutputFiles {
			if strings.EqualFold(filepath.Ext(out.Path), ".map") {
				mapFiles = append(mapFiles, out)
			} else {
				regularFiles = append(regularFiles, out)
			}
		}

		srcToHash := make(map[string]string)

		for _, out := range append(regularFiles, mapFiles...) {
			name, isMap, err := hashedName(out, srcToHash)
			if err != nil {
				return nil, err
			}

			contents := out.Contents
			if !isMap {
				contents = append(append([]byte{}, out.Contents...), fmt.Sprintf("//# sourceMappingURL=%s.map", name)...)
			}

			newPath := filepath.Join(filepath.Dir(out.Path), name)
			if err := os.WriteFile(newPath, contents, 0644); err != nil {
				return nil, errors.Wrapf(err, "failed to write %s", newPath)
			}

			if !isMap {
				emitted[target.Name] = path.Join("/", filepath.ToSlash(target.OutDir), name)
				log.WithFields(log.Fields{"target": target.Name, "file": newPath}).Info("Bundled theme script")
			}
		}
	}

	return emitted, nil
}

// hashedName turns "theme.js" into "theme_<hash>.js". Source maps reuse the
// hash of their bundle, which must have been seen first.
func hashedName(out api.OutputFile, srcToHash map[string]string) (string, bool, error) {
	base := filepath.Base(out.Path)
	dot := strings.Index(base, ".")
	if dot < 0 {
		return "", false, errors.Errorf("output file %s has no extension", out.Path)
	}
	ext := base[dot:]
	stem := base[:dot]
	isMap := strings.HasSuffix(ext, ".map")

	var hash string
	if isMap {
		hash = srcToHash[stem]
		if hash == "" {
			return "", true, errors.Errorf("source map %s can not find hash for its source file", stem)
		}
	} else {
		hash = strings.ReplaceAll(out.Hash, "/", "")
		srcToHash[stem] = hash
	}

	return fmt.Sprintf("%s_%s%s", stem, hash, ext), isMap, nil
}
