// Command jgenerics shows how generic Java types and method signatures look
// when seen from a parameterized use site.
//
//	jgenerics -use 'ArrayList<String>' -target Iterable Sources.java
//	jgenerics -use 'HashMap<String, Integer>' -method get -format go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/NickyBoy89/jgenerics/generics"
	"github.com/NickyBoy89/jgenerics/jtype"
	"github.com/NickyBoy89/jgenerics/parsing"
	"github.com/NickyBoy89/jgenerics/typegraph"
)

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetOutput(os.Stderr)

	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			log.WithError(err).Error("jgenerics failed")
		}
		os.Exit(1)
	}
}

type options struct {
	use    string
	target string
	method string
	format string
	files  []string
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("jgenerics", flag.ContinueOnError)
	opts := &options{}
	fs.StringVar(&opts.use, "use", "", "The use-site type expression, such as `List<String>`")
	fs.StringVar(&opts.target, "target", "", "Name of the supertype to parameterize from the use site")
	fs.StringVar(&opts.method, "method", "", "Name of the methods to show, as seen from the use site")
	fs.StringVar(&opts.format, "format", formatJava, "Output format: java or go")
	verbose := fs.Bool("v", false, "Log every step of the hierarchy walk")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if opts.use == "" {
		return nil, errors.New("a use site must be given with -use")
	}
	if opts.format != formatJava && opts.format != formatGo {
		return nil, fmt.Errorf("unknown output format %q", opts.format)
	}
	opts.files = fs.Args()
	return opts, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	graph := typegraph.New(jtype.NewRegistry())
	if _, err := parsing.LoadFiles(ctx, graph, opts.files...); err != nil {
		return err
	}
	engine := generics.New(graph, graph.Registry())

	useSite, err := ParseTypeExpr(opts.use)
	if err != nil {
		return err
	}
	if graph.DeclarationOf(useSite) == nil && !jtype.IsPrimitive(useSite.Name) && !useSite.IsArray() {
		return fmt.Errorf("unknown type %s", useSite.Name)
	}

	targetName := opts.target
	if targetName == "" {
		targetName = useSite.Name
	}
	targetDecl := graph.Lookup(targetName)
	if targetDecl == nil {
		return fmt.Errorf("unknown type %s", targetName)
	}

	target, err := engine.Parameterize(useSite, targetDecl.Ref())
	if err != nil {
		return err
	}

	if opts.method == "" {
		out, err := renderType(target, opts.format)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, out)
		return err
	}

	methods := targetDecl.FindMethod().ByName(opts.method)
	if len(methods) == 0 {
		return fmt.Errorf("%s declares no method named %s", targetDecl.Name, opts.method)
	}
	for _, m := range methods {
		parameterized, err := engine.ParameterizeMethod(useSite, m)
		if err != nil {
			return err
		}
		out, err := renderMethod(parameterized, target, opts.format)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(stdout, out); err != nil {
			return err
		}
	}
	return nil
}
