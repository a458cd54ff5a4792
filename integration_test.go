package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signalnine/goldtable/cmd"
)

// writeCorpus lays out root/<folder>/<test>/<n>.smt2.results files the way
// the verification test suite produces them.
func writeCorpus(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestEndToEnd(t *testing.T) {
	root := t.TempDir()
	writeCorpus(t, root, map[string]string{
		"ListWorking/T1.smt2.out/0.smt2.results":  "Human\t(Sat, 10)\nSolverA\t(Sat, 12)\n",
		"ListWorking/T1.smt2.out/1.smt2.results":  "Human\tUnsat\nSolverA\tTime limit exceeded\n",
		"ListWorking/T1.smt2.out/query.log":       "unrelated artifact\n",
		"ListWorking/T0.smt2.out/10.smt2.results": "Human\tUnsat\nSolverB\tUnsat\n",
		"ListWorking/T0.smt2.out/2.smt2.results":  "Human\t(Sat, 3)\nSolverB\tz3: segfault\nSolverA\t(Sat, 3)\n",
	})
	cfg := filepath.Join(root, "goldtable.yaml")
	writeCorpus(t, root, map[string]string{
		"goldtable.yaml": "corpus:\n  root: " + root + "\nreport:\n  color: never\n  workers: 2\n",
	})

	c := cmd.NewRootCmd()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs([]string{"--config", cfg})
	if err := c.Execute(); err != nil {
		t.Fatalf("Execute: %v\n%s", err, out.String())
	}

	want := strings.Join([]string{
		"Test name query SolverA SolverB   Human",
		"---------------------------------------",
		"       T0     0  sat(3)   error  sat(3)",
		"       T0     1       -   unsat   unsat",
		"       T1     0 sat(12)       - sat(10)",
		"       T1     1      TL       -   unsat",
		"---------------------------------------",
		"Total queries:\t\t4",
		"Solver coverage:\t2",
		"Best SolverA with score:\t1",
	}, "\n")
	if !strings.Contains(out.String(), want) {
		t.Errorf("unexpected report:\n%s\nwant:\n%s", out.String(), want)
	}
}
