// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package arith

import (
	"bytes"
	"flag"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/ghemawat/stream"
)

var (
	flagStyle = flag.Bool("style", false, "enable style test")
)

func dirCmd(
	dir string, name string, args ...string,
) (*exec.Cmd, *bytes.Buffer, stream.Filter, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, nil, err
	}
	stderr := new(bytes.Buffer)
	cmd.Stderr = stderr
	return cmd, stderr, stream.ReadLines(stdout), nil
}

// runLines runs name in dir and reports every line it writes to stdout
// as an error.
func runLines(t *testing.T, filters []stream.Filter, dir, name string, args ...string) {
	cmd, stderr, filter, err := dirCmd(dir, name, args...)
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.Start(); err != nil {
		t.Skip(err)
	}
	if err := stream.ForEach(stream.Sequence(append([]stream.Filter{filter}, filters...)...), func(s string) {
		t.Error(s)
	}); err != nil {
		t.Error(err)
	}
	if err := cmd.Wait(); err != nil {
		if out := stderr.String(); len(out) > 0 {
			t.Fatalf("err=%s, stderr=%s", err, out)
		}
	}
}

func TestStyle(t *testing.T) {
	if !*flagStyle {
		t.Skip("enable with -style")
	}

	dir, err := filepath.Abs(".")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("TestMisspell", func(t *testing.T) {
		t.Parallel()
		runLines(t, []stream.Filter{
			stream.GrepNot(`^_examples/`),
			stream.Map(func(s string) string {
				return filepath.Join(dir, s)
			}),
			stream.Xargs("misspell"),
		}, dir, "git", "ls-files")
	})

	t.Run("TestGofmtSimplify", func(t *testing.T) {
		t.Parallel()
		runLines(t, []stream.Filter{stream.GrepNot(`^_examples/`)}, dir, "gofmt", "-s", "-l", ".")
	})

	t.Run("TestVet", func(t *testing.T) {
		t.Parallel()
		// go vet reports on stderr and exits non-zero when it finds problems.
		cmd := exec.Command("go", "vet", "./...")
		cmd.Dir = dir
		var b bytes.Buffer
		cmd.Stdout = &b
		cmd.Stderr = &b
		switch err := cmd.Run(); err.(type) {
		case nil:
		case *exec.ExitError:
			t.Error(b.String())
		default:
			t.Fatal(err)
		}
	})

	t.Run("TestGolint", func(t *testing.T) {
		t.Parallel()
		runLines(t, nil, dir, "golint", "./...")
	})
}
