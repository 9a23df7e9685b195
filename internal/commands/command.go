package commands

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type Type string

const (
	TypeAdd      Type = "add"
	TypeEdit     Type = "edit"
	TypeDelete   Type = "delete"
	TypeList     Type = "list"
	TypeListDay  Type = "listday"
	TypeListWeek Type = "listweek"
	TypeFind     Type = "find"
	TypeFirstDay Type = "firstday"
	TypeClear    Type = "clear"
	TypeHelp     Type = "help"
	TypeExit     Type = "exit"
)

// Argument prefixes for task fields.
const (
	PrefixName     = "n/"
	PrefixDate     = "d/"
	PrefixPriority = "p/"
	PrefixVenue    = "v/"
	PrefixTag      = "t/"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	UsageAdd      = "add n/NAME d/DDMMYY p/PRIORITY v/VENUE [t/TAG]..."
	UsageEdit     = "edit INDEX [n/NAME] [d/DDMMYY] [p/PRIORITY] [v/VENUE] [t/TAG]..."
	UsageDelete   = "delete INDEX"
	UsageFind     = "find KEYWORD [MORE_KEYWORDS]..."
	UsageFirstDay = "firstday DDMMYY (the first Monday of the semester, e.g. firstday 130818)"
)

type AddArgs struct {
	Name     string
	Date     string
	Priority string
	Venue    string
	Tags     []string
}

// EditArgs carries only the fields the user supplied. A nil Tags leaves tags
// untouched; an empty non-nil slice clears them.
type EditArgs struct {
	Index    int
	Name     *string
	Date     *string
	Priority *string
	Venue    *string
	Tags     []string
}

func (e EditArgs) HasChanges() bool {
	return e.Name != nil || e.Date != nil || e.Priority != nil || e.Venue != nil || e.Tags != nil
}

type DeleteArgs struct {
	Index int
}

type FindArgs struct {
	Keywords []string
}

type FirstDayArgs struct {
	Date string
}

type Command struct {
	Type     Type
	Raw      string
	Add      *AddArgs
	Edit     *EditArgs
	Delete   *DeleteArgs
	Find     *FindArgs
	FirstDay *FirstDayArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head, rest := splitHead(raw)

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, rest)
	case TypeEdit:
		return parseEdit(input, rest)
	case TypeDelete:
		return parseDelete(input, rest)
	case TypeFind:
		return parseFind(input, rest)
	case TypeFirstDay:
		return parseFirstDay(input, rest)
	case TypeList, TypeListDay, TypeListWeek, TypeClear, TypeHelp, TypeExit:
		return Command{Type: Type(head), Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw, rest string) (Command, error) {
	preamble, fields := tokenize(rest)
	if preamble != "" {
		return Command{}, invalid("add", UsageAdd)
	}
	var args AddArgs
	for _, p := range []struct {
		prefix string
		dst    *string
	}{
		{PrefixName, &args.Name},
		{PrefixDate, &args.Date},
		{PrefixPriority, &args.Priority},
		{PrefixVenue, &args.Venue},
	} {
		v, ok := fields.last(p.prefix)
		if !ok {
			return Command{}, invalid("add", UsageAdd)
		}
		*p.dst = v
	}
	args.Tags = fields.tags()
	return Command{Type: TypeAdd, Raw: raw, Add: &args}, nil
}

func parseEdit(raw, rest string) (Command, error) {
	preamble, fields := tokenize(rest)
	index, err := parseIndex(preamble)
	if err != nil {
		return Command{}, invalid("edit", UsageEdit)
	}
	args := EditArgs{Index: index}
	if v, ok := fields.last(PrefixName); ok {
		args.Name = &v
	}
	if v, ok := fields.last(PrefixDate); ok {
		args.Date = &v
	}
	if v, ok := fields.last(PrefixPriority); ok {
		args.Priority = &v
	}
	if v, ok := fields.last(PrefixVenue); ok {
		args.Venue = &v
	}
	args.Tags = fields.tags()
	if !args.HasChanges() {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "At least one field to edit must be provided."}
	}
	return Command{Type: TypeEdit, Raw: raw, Edit: &args}, nil
}

func parseDelete(raw, rest string) (Command, error) {
	index, err := parseIndex(rest)
	if err != nil {
		return Command{}, invalid("delete", UsageDelete)
	}
	return Command{Type: TypeDelete, Raw: raw, Delete: &DeleteArgs{Index: index}}, nil
}

func parseFind(raw, rest string) (Command, error) {
	keywords := strings.Fields(rest)
	if len(keywords) == 0 {
		return Command{}, invalid("find", UsageFind)
	}
	return Command{Type: TypeFind, Raw: raw, Find: &FindArgs{Keywords: keywords}}, nil
}

// parseFirstDay only checks arity; date semantics belong to the handler so
// that malformed and non-Monday input report distinct messages.
func parseFirstDay(raw, rest string) (Command, error) {
	parts := strings.Fields(rest)
	switch len(parts) {
	case 0:
		return Command{}, invalid("firstday", UsageFirstDay)
	case 1:
		return Command{Type: TypeFirstDay, Raw: raw, FirstDay: &FirstDayArgs{Date: parts[0]}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "FirstDay command only accept one set of date"}
	}
}

// splitHead separates the command word at the first whitespace of any kind.
// Command words are matched exactly, so "ADD" is not "add".
func splitHead(raw string) (string, string) {
	i := strings.IndexFunc(raw, unicode.IsSpace)
	if i < 0 {
		return raw, ""
	}
	return raw[:i], strings.TrimSpace(raw[i:])
}

func parseIndex(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("index must be positive: %d", n)
	}
	return n, nil
}

func invalid(cmd, usage string) *CommandError {
	return &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid %s command format; usage: %s", cmd, usage)}
}
