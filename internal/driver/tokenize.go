// Package driver orchestrates lexing across whole directories: file
// discovery, parallel tokenization, diagnostics collection and the on-disk
// token cache.
package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/observ"
	"quill/internal/source"
	"quill/internal/token"
)

// DefaultExtension is the language's source file extension.
const DefaultExtension = ".ql"

// TokenizeResult содержит результат токенизации одного файла.
type TokenizeResult struct {
	Path   string        // относительный путь к файлу
	FileID source.FileID // ID файла в FileSet
	Tokens []token.Token // nil при ошибке лексинга или загрузки
	Bag    *diag.Bag     // диагностики файла
}

// Failed reports whether the file produced no usable token stream.
func (r *TokenizeResult) Failed() bool {
	return r.Bag.HasErrors()
}

// TokenizeOptions configures TokenizeDir and TokenizeFile.
type TokenizeOptions struct {
	// MaxDiagnostics caps the per-file diagnostic bag; <= 0 means unlimited.
	MaxDiagnostics int
	// Jobs is the number of concurrent workers; <= 0 uses GOMAXPROCS.
	Jobs int
	// Extension overrides DefaultExtension when non-empty.
	Extension string
	// Cache, when non-nil, is consulted before lexing and updated after.
	Cache *TokenCache
}

func (o TokenizeOptions) extension() string {
	if o.Extension != "" {
		return o.Extension
	}
	return DefaultExtension
}

// listSourceFiles возвращает отсортированный список исходников в директории.
func listSourceFiles(dir, ext string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeFile lexes a single file that is already part of the FileSet.
func TokenizeFile(fileSet *source.FileSet, fileID source.FileID, opts TokenizeOptions) TokenizeResult {
	file := fileSet.Get(fileID)
	bag := diag.NewBag(opts.MaxDiagnostics)

	result := TokenizeResult{
		Path:   file.Path,
		FileID: fileID,
		Bag:    bag,
	}

	if opts.Cache != nil {
		if tokens, ok, err := opts.Cache.Get(file); err == nil && ok {
			result.Tokens = tokens
			return result
		}
		// Ошибки чтения кэша не фатальны: лексим заново.
	}

	lx := lexer.New(file, lexer.Options{Reporter: diag.NewBagReporter(bag)})
	tokens, err := lx.Lex()
	if err != nil {
		return result
	}

	result.Tokens = tokens
	if opts.Cache != nil {
		if err := opts.Cache.Put(file, tokens); err != nil {
			diag.ReportWarning(diag.NewBagReporter(bag), diag.UnknownCode, source.Span{File: fileID},
				fmt.Sprintf("failed to write token cache: %v", err)).Emit()
		}
	}
	return result
}

// TokenizeDir lexes every source file under dir in parallel. Results are in
// the same deterministic order as the sorted file list. The error return
// covers directory walking and cancellation; per-file problems (I/O and lex
// failures) land in each result's Bag instead.
func TokenizeDir(ctx context.Context, dir string, opts TokenizeOptions) (*source.FileSet, []TokenizeResult, observ.Report, error) {
	timer := observ.NewTimer()

	endScan := timer.Start("scan")
	files, err := listSourceFiles(dir, opts.extension())
	endScan(fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return nil, nil, timer.Report(), err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, timer.Report(), nil
	}

	// Предзагружаем все файлы; ошибки загрузки превращаются в диагностики.
	endLoad := timer.Start("load")
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}
	endLoad("")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]TokenizeResult, len(files))

	endLex := timer.Start("lex")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{},
				})
				results[i] = TokenizeResult{Path: path, Bag: bag}
				return nil
			}

			results[i] = TokenizeFile(fileSet, fileIDs[path], opts)
			return nil
		})
	}

	err = g.Wait()
	endLex("")
	return fileSet, results, timer.Report(), err
}
