// program.go
//
// Program construction for the CLI. The engine defines no on-disk or textual
// program form, so both live here on the embedder side:
//
//   - loadProgramYAML decodes a .nsy file: a YAML list whose items are bare
//     numbers (Num), bare strings (Word), or single-key maps tagging the
//     variant explicitly: {num: 3}, {str: "hi"}, {word: "+"}.
//   - readWords splits a command line into values: numeric tokens become Num,
//     double-quoted tokens become Str, everything else a Word.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	nslang "github.com/snaveen/n-slang"
)

func loadProgramYAML(data []byte) (nslang.Program, error) {
	var raw []any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("program must be a YAML list: %w", err)
	}

	prog := make(nslang.Program, 0, len(raw))
	for i, item := range raw {
		v, err := yamlValue(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		prog = append(prog, v)
	}
	return prog, nil
}

func yamlValue(item any) (nslang.Value, error) {
	switch x := item.(type) {
	case int:
		return nslang.Num(float64(x)), nil
	case int64:
		return nslang.Num(float64(x)), nil
	case float64:
		return nslang.Num(x), nil
	case string:
		return nslang.Word(x), nil
	case map[string]any:
		if len(x) != 1 {
			return nslang.Value{}, fmt.Errorf("tagged item must have exactly one key, got %d", len(x))
		}
		for k, payload := range x {
			switch k {
			case "num":
				switch n := payload.(type) {
				case int:
					return nslang.Num(float64(n)), nil
				case int64:
					return nslang.Num(float64(n)), nil
				case float64:
					return nslang.Num(n), nil
				default:
					return nslang.Value{}, fmt.Errorf("num: payload %v is not numeric", payload)
				}
			case "str":
				s, ok := payload.(string)
				if !ok {
					return nslang.Value{}, fmt.Errorf("str: payload %v is not a string", payload)
				}
				return nslang.Str(s), nil
			case "word":
				s, ok := payload.(string)
				if !ok {
					return nslang.Value{}, fmt.Errorf("word: payload %v is not a string", payload)
				}
				return nslang.Word(s), nil
			default:
				return nslang.Value{}, fmt.Errorf("unknown tag %q (want num, str, or word)", k)
			}
		}
	}
	return nslang.Value{}, fmt.Errorf("unsupported item %v (%T)", item, item)
}

// readWords turns one line of text into a Program. Tokens are separated by
// whitespace except inside double quotes; \" and \\ escape within quotes.
func readWords(line string) (nslang.Program, error) {
	var prog nslang.Program

	rs := []rune(line)
	i := 0
	for i < len(rs) {
		if unicode.IsSpace(rs[i]) {
			i++
			continue
		}

		if rs[i] == '"' {
			var b strings.Builder
			i++
			closed := false
			for i < len(rs) {
				c := rs[i]
				if c == '\\' && i+1 < len(rs) {
					b.WriteRune(rs[i+1])
					i += 2
					continue
				}
				if c == '"' {
					i++
					closed = true
					break
				}
				b.WriteRune(c)
				i++
			}
			if !closed {
				return nil, fmt.Errorf("unterminated string literal")
			}
			prog = append(prog, nslang.Str(b.String()))
			continue
		}

		start := i
		for i < len(rs) && !unicode.IsSpace(rs[i]) {
			i++
		}
		tok := string(rs[start:i])
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			prog = append(prog, nslang.Num(f))
		} else {
			prog = append(prog, nslang.Word(tok))
		}
	}
	return prog, nil
}
