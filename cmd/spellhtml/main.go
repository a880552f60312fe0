// Package main provides the command-line interface for SpellHTML.
// It extracts spell-checkable text from HTML files, standard input or the
// sources of a task file and prints it as JSON or tab-separated lines.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mrjoshuak/spellhtml"
	"github.com/mrjoshuak/spellhtml/internal/config"
)

// OutputFormat represents the supported output formats.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatText OutputFormat = "text"
)

// job is one filter and the inputs it runs over.
type job struct {
	name   string
	filter spellhtml.Filter
	inputs []string
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run executes the command and returns its exit status: 0 on success,
// 1 when any input failed and 2 for usage errors.
func run(args []string, stdin io.Reader, stdout io.Writer) int {
	flags := flag.NewFlagSet("spellhtml", flag.ContinueOnError)

	configPath := flags.String("config", "", "YAML task file (env SPELLHTML_CONFIG)")
	taskName := flags.String("task", "", "Run only the named task from the task file")
	inputFiles := flags.String("input", "", "Input HTML file path(s) (comma-separated, use '-' for stdin)")
	outputFile := flags.String("output", "", "Output file path (default: stdout)")
	modeStr := flags.String("mode", "html", "Parser mode: html, xhtml or html5")
	comments := flags.Bool("comments", true, "Extract comment text")
	attributes := flags.String("attributes", "", "Attribute names to extract (comma-separated)")
	ignores := flags.String("ignore", "", "Selectors of elements to skip (comma-separated)")
	encoding := flags.String("encoding", "", "Default encoding for documents that declare none (env SPELLHTML_DEFAULT_ENCODING)")
	formatStr := flags.String("format", "json", "Output format: json or text")
	compact := flags.Bool("compact", false, "Output compact JSON without indentation")
	verbose := flags.Bool("v", false, "Verbose logging")
	showVersion := flags.Bool("version", false, "Show version information")

	flags.Usage = func() {
		out := flags.Output()
		fmt.Fprintf(out, "SpellHTML - Extract spell-checkable text from HTML\n\n")
		fmt.Fprintf(out, "Usage: spellhtml [options]\n\n")
		fmt.Fprintf(out, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  spellhtml -input page.html -attributes alt,title\n")
		fmt.Fprintf(out, "  spellhtml -input doc.xhtml -mode xhtml -ignore code,pre.nospell -format text\n")
		fmt.Fprintf(out, "  spellhtml -config .spellhtml.yml -task docs\n")
		fmt.Fprintf(out, "  cat page.html | spellhtml -input - -compact\n")
	}

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if *showVersion {
		info := spellhtml.GetBuildInfo()
		fmt.Fprintf(stdout, "%s version %s (%s)\n", info.Name, info.Version, info.GoVersion)
		return 0
	}

	env, err := config.LoadEnv()
	if err != nil {
		log.Error().Err(err).Msg("invalid environment")
		return 2
	}
	if *verbose || env.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if *configPath == "" {
		*configPath = env.Config
	}
	if *encoding == "" {
		*encoding = env.DefaultEncoding
	}

	format := OutputFormat(strings.ToLower(*formatStr))
	if format != FormatJSON && format != FormatText {
		log.Error().Str("format", *formatStr).Msg("invalid output format, must be one of: json, text")
		return 2
	}

	var jobs []job
	if *configPath != "" && *inputFiles == "" {
		jobs, err = taskJobs(*configPath, *taskName, *encoding)
	} else {
		jobs, err = inputJobs(*inputFiles, *modeStr, *comments, *attributes, *ignores, *encoding)
	}
	if err != nil {
		log.Error().Err(err).Msg("configuration error")
		return 2
	}

	var (
		results []spellhtml.SourceText
		failed  bool
	)
	for _, j := range jobs {
		log.Debug().Str("task", j.name).Int("inputs", len(j.inputs)).Msg("running")
		for _, input := range j.inputs {
			texts, err := filterInput(j.filter, input, stdin)
			if err != nil {
				log.Error().Err(err).Str("input", input).Msg("filtering failed")
				failed = true
				continue
			}
			log.Debug().Str("input", input).Int("fragments", len(texts)).Msg("filtered")
			results = append(results, texts...)
		}
	}

	output := stdout
	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			log.Error().Err(err).Str("output", *outputFile).Msg("creating output file")
			return 1
		}
		defer file.Close()
		output = file
	}
	if err := write(output, results, format, *compact); err != nil {
		log.Error().Err(err).Msg("writing output")
		return 1
	}
	if failed {
		return 1
	}
	return 0
}

// inputJobs builds a single job from the command-line filter flags.
func inputJobs(inputFiles, mode string, comments bool, attributes, ignores, encoding string) ([]job, error) {
	m, err := spellhtml.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	filter, err := spellhtml.New(
		spellhtml.WithMode(m),
		spellhtml.WithComments(comments),
		spellhtml.WithAttributes(splitList(attributes)...),
		spellhtml.WithIgnores(splitList(ignores)...),
		spellhtml.WithDefaultEncoding(encoding),
	)
	if err != nil {
		return nil, err
	}

	inputs := []string{"-"}
	if inputFiles != "" && inputFiles != "-" {
		inputs = splitList(inputFiles)
	}
	return []job{{name: "cli", filter: filter, inputs: inputs}}, nil
}

// taskJobs builds one job per task of the task file, or only the named
// task. Source globs are resolved relative to the task file.
func taskJobs(path, only, encoding string) ([]job, error) {
	fc, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	tasks := fc.Matrix
	if only != "" {
		task, ok := fc.Find(only)
		if !ok {
			return nil, fmt.Errorf("no task named %q in %s", only, path)
		}
		tasks = []config.Task{task}
	}

	dir := filepath.Dir(path)
	jobs := make([]job, 0, len(tasks))
	for _, task := range tasks {
		opts, err := task.Options(encoding)
		if err != nil {
			return nil, err
		}
		filter, err := spellhtml.NewWithOptions(opts)
		if err != nil {
			return nil, fmt.Errorf("task %q: %w", task.Name, err)
		}
		files, err := task.Files(dir)
		if err != nil {
			return nil, fmt.Errorf("task %q: %w", task.Name, err)
		}
		if len(files) == 0 {
			log.Warn().Str("task", task.Name).Msg("sources matched no files")
		}
		jobs = append(jobs, job{name: task.Name, filter: filter, inputs: files})
	}
	return jobs, nil
}

func filterInput(filter spellhtml.Filter, input string, stdin io.Reader) ([]spellhtml.SourceText, error) {
	if input == "-" {
		return filter.FilterReader(stdin, "<stdin>", "")
	}
	return filter.FilterFile(input, "")
}

func write(w io.Writer, results []spellhtml.SourceText, format OutputFormat, compact bool) error {
	switch format {
	case FormatText:
		for _, st := range results {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", st.Context, st.Text); err != nil {
				return err
			}
		}
		return nil
	default:
		if results == nil {
			results = []spellhtml.SourceText{}
		}
		enc := json.NewEncoder(w)
		if !compact {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(results)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
