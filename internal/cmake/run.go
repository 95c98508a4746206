package cmake

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
)

// Runner executes bin with an explicit argument vector, forwarding the
// inherited environment plus the given overrides, and streams the
// child's merged stdout/stderr to out line by line as it is produced.
// It blocks until the child exits. A non-zero exit is reported as an
// *exec.ExitError; any other error means the process never ran.
type Runner func(bin string, args []string, env map[string]string, out io.Writer) error

// Execute is the default Runner.
func Execute(bin string, args []string, env map[string]string, out io.Writer) error {
	cmd := exec.Command(bin, args...)
	if len(env) > 0 {
		cmd.Env = mergeEnv(os.Environ(), env)
	}
	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", bin, err)
	}

	sc := bufio.NewScanner(pipe)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		fmt.Fprintln(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		_ = cmd.Wait()
		return fmt.Errorf("read %s output: %w", bin, err)
	}
	return cmd.Wait()
}

func mergeEnv(base []string, override map[string]string) []string {
	envMap := make(map[string]string, len(base))
	for _, kv := range base {
		if k, v, ok := strings.Cut(kv, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range override {
		envMap[k] = v
	}
	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+envMap[k])
	}
	return out
}
