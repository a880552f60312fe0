// Package config loads spell-check task files and environment overrides
// for the spellhtml command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kelseyhightower/envconfig"
	yaml "gopkg.in/yaml.v3"

	"github.com/mrjoshuak/spellhtml/types"
)

// FileConfig is the task file schema: a matrix of named tasks, each with
// its own sources and HTML filter settings.
type FileConfig struct {
	Matrix []Task `yaml:"matrix" json:"matrix"`
}

// Task is one entry of the matrix.
type Task struct {
	Name            string     `yaml:"name" json:"name"`
	Sources         []string   `yaml:"sources" json:"sources"`
	DefaultEncoding string     `yaml:"default_encoding" json:"default_encoding"`
	HTML            HTMLConfig `yaml:"html" json:"html"`
}

// HTMLConfig holds the filter settings of a task. A nil Comments keeps
// the default.
type HTMLConfig struct {
	Comments   *bool    `yaml:"comments" json:"comments"`
	Attributes []string `yaml:"attributes" json:"attributes"`
	Mode       string   `yaml:"mode" json:"mode"`
	Ignores    []string `yaml:"ignores" json:"ignores"`
}

// Env holds the SPELLHTML_* environment overrides.
type Env struct {
	Config          string `envconfig:"CONFIG"`
	Verbose         bool   `envconfig:"VERBOSE" default:"false"`
	DefaultEncoding string `envconfig:"DEFAULT_ENCODING"`
}

// LoadEnv reads the SPELLHTML_* environment variables.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process("spellhtml", &env); err != nil {
		return env, types.WrapConfigError(err, "LoadEnv", "reading environment")
	}
	return env, nil
}

// LoadFile reads a YAML task file.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, types.WrapIOError(err, "LoadFile", path)
	}
	return Parse(b)
}

// Parse decodes a YAML task file and checks that every task names its
// sources and a known mode.
func Parse(b []byte) (FileConfig, error) {
	var fc FileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, types.WrapConfigError(err, "Parse", "parse yaml")
	}
	if len(fc.Matrix) == 0 {
		return fc, types.WrapConfigError(fmt.Errorf("no tasks in matrix"), "Parse", "")
	}
	for i, task := range fc.Matrix {
		if task.Name == "" {
			fc.Matrix[i].Name = fmt.Sprintf("task-%d", i+1)
		}
		if len(task.Sources) == 0 {
			return fc, types.WrapConfigError(fmt.Errorf("task %q has no sources", fc.Matrix[i].Name), "Parse", "")
		}
		if _, err := types.ParseMode(task.HTML.Mode); err != nil {
			return fc, types.WrapConfigError(err, "Parse", fc.Matrix[i].Name)
		}
	}
	return fc, nil
}

// Find returns the task with the given name.
func (fc FileConfig) Find(name string) (Task, bool) {
	for _, task := range fc.Matrix {
		if task.Name == name {
			return task, true
		}
	}
	return Task{}, false
}

// Options converts the task settings into filter options. A non-empty
// defaultEncoding overrides the task's own.
func (t Task) Options(defaultEncoding string) (types.Options, error) {
	opts := types.DefaultOptions()
	mode, err := types.ParseMode(t.HTML.Mode)
	if err != nil {
		return opts, types.WrapConfigError(err, "Options", t.Name)
	}
	opts.Mode = mode
	if t.HTML.Comments != nil {
		opts.Comments = *t.HTML.Comments
	}
	opts.Attributes = t.HTML.Attributes
	opts.Ignores = t.HTML.Ignores
	opts.DefaultEncoding = t.DefaultEncoding
	if defaultEncoding != "" {
		opts.DefaultEncoding = defaultEncoding
	}
	return opts, nil
}

// Files expands the source globs relative to dir. Matches are
// deduplicated and sorted; directories are left out.
func (t Task) Files(dir string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range t.Sources {
		if !filepath.IsAbs(pattern) && dir != "" {
			pattern = filepath.Join(dir, pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, types.WrapConfigError(err, "Files", pattern)
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			if info, err := os.Stat(m); err != nil || info.IsDir() {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}
