package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/memoctlgo/internal/meta"
)

const bashCompletionScript = `# bash completion for memoctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_memoctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "fib prime match bench purge completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local common="--attrs -a --color -c --filter -f --output -o --sort -s --titles -t --tldr"

    case "$cmd" in
    fib)
      local opts="$common --persist -p"
            ;;
        prime)
      local opts="$common --persist -p"
            ;;
        match)
      local opts="$common --all"
            ;;
        bench)
      local opts="$common"
            ;;
        purge)
            local opts="--hours"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

  if [[ "$cur" == -* ]]; then
    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
  fi

  # match takes an optional FILE positional
  if [[ "$cmd" == "match" ]]; then
    COMPREPLY=( $(compgen -o filenames -- "$cur") )
    return 0
  fi

  COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
  return 0
}

complete -F _memoctl memoctl
`

const zshCompletionScript = `#compdef memoctl

_memoctl() {
  local -a cmds
  cmds=(
    'fib:memoized Fibonacci numbers'
    'prime:probable primes by digit count'
    'match:first row matching the filters'
    'bench:memoized vs naive Fibonacci'
    'purge:purge aged disk cache entries'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'memoctl commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    fib)
      _arguments -C \
        $common \
        '(-p --persist)'{-p,--persist}'[persist results to a store]:target' \
        '*:index or range'
      ;;
    prime)
      _arguments -C \
        $common \
        '(-p --persist)'{-p,--persist}'[persist results to a store]:target' \
        '*:digit count or range'
      ;;
    match)
      _arguments -C \
        $common \
        '--all[emit every matching row]' \
        '::FILE:_files'
      ;;
    bench)
      _arguments -C \
        $common \
        '::index'
      ;;
    purge)
      _arguments -C \
        '--hours[max entry age in hours]:hours'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _memoctl memoctl memoctlgo
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(os.Stdout, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(os.Stdout, bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: memoctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "memoctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
