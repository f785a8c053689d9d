// jrt CLI - inspects the object-model runtime and runs its demo program
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chazu/jrt/config"
	"github.com/chazu/jrt/rt"
	"github.com/chazu/jrt/rt/meta"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	configPath := flag.String("config", "", "Path to jrt.toml (default: search upward from the working directory)")
	verbosity := flag.Int("v", -1, "Log verbosity (overrides the configuration)")
	output := flag.String("o", "", "Output file for 'snapshot' (default: stdout)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: jrt [options] <command>\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  classes    List the runtime's classes and their vtable layouts\n")
		fmt.Fprintf(os.Stderr, "  snapshot   Write a CBOR snapshot of the class metadata\n")
		fmt.Fprintf(os.Stderr, "  demo       Run the built-in demo program\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *verbosity >= 0 {
		cfg.Log.Verbosity = *verbosity
	}
	cfg.Apply()

	if err := run(flag.Arg(0), *output, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	cfg, err := config.FindAndLoad(".")
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg, nil
}

func run(command, output string, stdout io.Writer) error {
	switch command {
	case "classes":
		rt.Bootstrap()
		listClasses(stdout, rt.Classes())
		return nil
	case "snapshot":
		rt.Bootstrap()
		return writeSnapshot(output, stdout)
	case "demo":
		if err := rt.Try(func() { runDemo(stdout) }); err != nil {
			return fmt.Errorf("demo: uncaught %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func listClasses(w io.Writer, ct *rt.ClassTable) {
	for _, c := range ct.All() {
		line := c.Name()
		if p := c.GetSuperclass(); p != nil {
			line += " extends " + p.Name()
		}
		if k := c.GetComponentType(); k != nil {
			line += fmt.Sprintf(" (component %s, %dD)", k.Name(), c.Dimensions())
		}
		if c.IsPrimitive() {
			line += " (primitive)"
		}
		fmt.Fprintln(w, line)
		if vt := c.InstanceVTable(); vt != nil {
			fmt.Fprintf(w, "    slots: %s\n", strings.Join(vt.Selectors(), ", "))
		}
	}
}

func writeSnapshot(path string, stdout io.Writer) error {
	data, err := meta.Marshal(meta.Capture(rt.Classes()))
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if path == "" {
		_, err = stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}
