// Command aggregate_boundary reports service and handler methods that write
// quiz tables through repos instead of the quiz aggregate. It exits non-zero
// when any are found.
//
//	go run ./scripts/aggregate_boundary.go [root]
package main

import (
	"encoding/json"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type finding struct {
	Struct string `json:"struct"`
	Method string `json:"method"`
	Field  string `json:"field"`
	Call   string `json:"call"`
	File   string `json:"file"`
	Line   int    `json:"line"`
}

type report struct {
	Scanned           []string  `json:"scanned"`
	AggregateCallers  []string  `json:"aggregate_callers"`
	BoundaryViolation []finding `json:"boundary_violations"`
}

// Repo types whose rows belong to the quiz aggregate.
var guardedRepos = map[string]bool{
	"QuizRepo":     true,
	"QuestionRepo": true,
	"AnswerRepo":   true,
	"ResultRepo":   true,
}

var repoWriteMethods = map[string]bool{
	"Create":         true,
	"DeleteOwned":    true,
	"DeleteByQuizID": true,
}

var aggregateMethods = map[string]bool{
	"CreateQuiz": true,
	"DeleteQuiz": true,
}

var scanDirs = []string{
	filepath.Join("internal", "services"),
	filepath.Join("internal", "http", "handlers"),
}

func main() {
	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	var rep report
	callers := map[string]bool{}
	fset := token.NewFileSet()
	for _, dir := range scanDirs {
		pkgs, err := parser.ParseDir(fset, filepath.Join(root, dir), func(fi os.FileInfo) bool {
			name := fi.Name()
			return strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go")
		}, 0)
		if err != nil {
			exitf("parse %s: %v", dir, err)
		}
		rep.Scanned = append(rep.Scanned, filepath.ToSlash(dir))
		for _, pkg := range pkgs {
			fields := map[string]map[string]string{}
			for _, f := range pkg.Files {
				collectFields(f, fields)
			}
			for path, f := range pkg.Files {
				rel, err := filepath.Rel(root, path)
				if err != nil {
					rel = path
				}
				inspectMethods(fset, f, filepath.ToSlash(rel), fields, callers, &rep.BoundaryViolation)
			}
		}
	}

	rep.AggregateCallers = sortedKeys(callers)
	sort.Slice(rep.BoundaryViolation, func(i, j int) bool {
		a, b := rep.BoundaryViolation[i], rep.BoundaryViolation[j]
		if a.File == b.File {
			return a.Line < b.Line
		}
		return a.File < b.File
	})

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		exitf("marshal report: %v", err)
	}
	fmt.Println(string(out))
	if len(rep.BoundaryViolation) > 0 {
		os.Exit(1)
	}
}

// collectFields records, per struct, the fields typed as a guarded repo.
func collectFields(file *ast.File, out map[string]map[string]string) {
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok || st.Fields == nil {
				continue
			}
			for _, field := range st.Fields.List {
				sel, ok := field.Type.(*ast.SelectorExpr)
				if !ok || !guardedRepos[sel.Sel.Name] {
					continue
				}
				for _, name := range field.Names {
					if out[ts.Name.Name] == nil {
						out[ts.Name.Name] = map[string]string{}
					}
					out[ts.Name.Name][name.Name] = sel.Sel.Name
				}
			}
		}
	}
}

func inspectMethods(
	fset *token.FileSet,
	file *ast.File,
	relFile string,
	fields map[string]map[string]string,
	callers map[string]bool,
	out *[]finding,
) {
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Recv == nil || fd.Body == nil || len(fd.Recv.List) == 0 {
			continue
		}
		recvName, recvType := recvInfo(fd.Recv.List[0])
		if recvName == "" {
			continue
		}
		guarded := fields[recvType]

		ast.Inspect(fd.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			fnSel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			method := fnSel.Sel.Name
			if aggregateMethods[method] {
				callers[recvType+"."+fd.Name.Name] = true
			}
			rcvSel, ok := fnSel.X.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			base, ok := rcvSel.X.(*ast.Ident)
			if !ok || base.Name != recvName {
				return true
			}
			repoType, ok := guarded[rcvSel.Sel.Name]
			if !ok || !repoWriteMethods[method] {
				return true
			}
			*out = append(*out, finding{
				Struct: recvType,
				Method: fd.Name.Name,
				Field:  rcvSel.Sel.Name,
				Call:   repoType + "." + method,
				File:   relFile,
				Line:   fset.Position(call.Pos()).Line,
			})
			return true
		})
	}
}

func recvInfo(field *ast.Field) (string, string) {
	if field == nil || len(field.Names) == 0 {
		return "", ""
	}
	switch t := field.Type.(type) {
	case *ast.StarExpr:
		if id, ok := t.X.(*ast.Ident); ok {
			return field.Names[0].Name, id.Name
		}
	case *ast.Ident:
		return field.Names[0].Name, t.Name
	}
	return "", ""
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
