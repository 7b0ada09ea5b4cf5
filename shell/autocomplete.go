package shell

import (
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

var commandNames = []string{
	"move", "moves", "best", "ranked", "profile", "autoplay", "show", "help",
	"exit", "quit",
}

var autoplayOptions = []string{"-threads", "-file"}

// levelArg is the position of the level argument for commands that take one.
var levelArg = map[string]int{
	"best":    2,
	"ranked":  2,
	"profile": 1,
}

func (c *ShellCompleter) levels() []string {
	return lo.Map(lo.Range(len(c.sc.config.Levels())), func(i int, _ int) string {
		return strconv.Itoa(i + 1)
	})
}

// Do implements the readline.AutoComplete interface
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string
	// argIdx is the position of the word being completed, the command being 0.
	argIdx := len(fields)
	if !endsWithSpace && len(fields) > 0 {
		prefix = fields[len(fields)-1]
		argIdx--
	}

	if argIdx == 0 {
		completions = commandNames
	} else {
		cmdName := fields[0]
		switch {
		case levelArg[cmdName] == argIdx:
			completions = c.levels()
		case cmdName == "profile" && argIdx == 2:
			completions = []string{"log", "drop"}
		case cmdName == "autoplay" && argIdx == 1:
			completions = []string{"stop"}
		case cmdName == "autoplay" && (argIdx == 2 || argIdx == 3):
			completions = c.levels()
		case cmdName == "autoplay" && strings.HasPrefix(prefix, "-"):
			completions = autoplayOptions
		case cmdName == "help" && argIdx == 1:
			completions = []string{"autoplay", "levels"}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			// Return only the part that needs to be added
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
