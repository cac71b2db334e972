package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Generate the site from the content directory")
	fmt.Fprintln(w, "  render     Render one markdown file to stdout")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2html help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every .md file below the content directory to an HTML page and")
	fmt.Fprintln(w, "copy the static directory next to them.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Directories:")
	fmt.Fprintln(w, "      --content <dir>       Markdown directory (default \"content\")")
	fmt.Fprintln(w, "      --static <dir>        Static files directory (default \"static\")")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default \"public\")")
	fmt.Fprintln(w, "      --no-clean            Keep existing files in the output directory")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	printSharedUsage(w)
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html render <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render one markdown file (- for stdin) as an HTML fragment.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --title               Print the first level-1 heading instead")
	fmt.Fprintln(w, "      --page                Fill the page template")
	printSharedUsage(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --defaults            Print the built-in defaults only")
}

func printSharedUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --heading-ids         Add anchor ids to headings")
	fmt.Fprintln(w, "      --highlight <style>   Highlight fenced code with a chroma style")
	fmt.Fprintln(w, "      --max-depth <n>       Maximum quote and list nesting")
	fmt.Fprintln(w, "      --inline-style        Embed the stylesheet in each page")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "  -t, --template <name>     Page template name or path")
	fmt.Fprintln(w, "  -s, --style <name>        Stylesheet name or path")
	fmt.Fprintln(w, "      --assets <dir>        Directory overriding built-in assets")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config and output:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --log-level <level>   debug, info, warn, error")
	fmt.Fprintln(w, "      --log-format <fmt>    text, json")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log every page")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "render":
		printRenderUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
