package mdparser

import "unicode/utf8"

// ParseElementItalic matches "*...*" or "_..._", trying the star form first.
func ParseElementItalic(input string) (string, string, error) {
	r, err := alt(input,
		func(in string) (result[string], error) {
			return delimited(Italic1, func(s string) (result[string], error) { return isNot(Italic1, s) }, Italic1, in)
		},
		func(in string) (result[string], error) {
			return delimited(Italic2, func(s string) (result[string], error) { return isNot(Italic2, s) }, Italic2, in)
		},
	)
	if err != nil {
		return "", "", err
	}
	return r.output, r.remaining, nil
}

// ParseElementBold matches "**...**" or "__...__".
func ParseElementBold(input string) (string, string, error) {
	r, err := alt(input,
		func(in string) (result[string], error) {
			return delimited(Bold1, func(s string) (result[string], error) { return isNot(Bold1, s) }, Bold1, in)
		},
		func(in string) (result[string], error) {
			return delimited(Bold2, func(s string) (result[string], error) { return isNot(Bold2, s) }, Bold2, in)
		},
	)
	if err != nil {
		return "", "", err
	}
	return r.output, r.remaining, nil
}

// ParseElementBoldItalic matches "***...***" or "___...___".
func ParseElementBoldItalic(input string) (string, string, error) {
	r, err := alt(input,
		func(in string) (result[string], error) {
			return delimited(BoldItalic1, func(s string) (result[string], error) { return isNot(BoldItalic1, s) }, BoldItalic1, in)
		},
		func(in string) (result[string], error) {
			return delimited(BoldItalic2, func(s string) (result[string], error) { return isNot(BoldItalic2, s) }, BoldItalic2, in)
		},
	)
	if err != nil {
		return "", "", err
	}
	return r.output, r.remaining, nil
}

// ParseElementCode matches "`...`".
func ParseElementCode(input string) (string, string, error) {
	r, err := delimited(BackTick, func(s string) (result[string], error) { return isNot(BackTick, s) }, BackTick, input)
	if err != nil {
		return "", "", err
	}
	return r.output, r.remaining, nil
}

// ParseElementLink matches "[text](url)".
func ParseElementLink(input string) (HyperlinkData, string, error) {
	textRes, err := delimited(LeftBracket, func(s string) (result[string], error) { return isNot(RightBracket, s) }, RightBracket, input)
	if err != nil {
		return HyperlinkData{}, "", err
	}
	urlRes, err := delimited(LeftParen, func(s string) (result[string], error) { return isNot(RightParen, s) }, RightParen, textRes.remaining)
	if err != nil {
		return HyperlinkData{}, "", err
	}
	return NewHyperlinkData(textRes.output, urlRes.output), urlRes.remaining, nil
}

// ParseElementImage matches "![alt](url)".
func ParseElementImage(input string) (HyperlinkData, string, error) {
	afterBang, err := tag(LeftImage, input)
	if err != nil {
		return HyperlinkData{}, "", err
	}
	altRes, err := isNot(RightImage, afterBang.remaining)
	if err != nil {
		return HyperlinkData{}, "", err
	}
	afterClose, err := tag(RightImage, altRes.remaining)
	if err != nil {
		return HyperlinkData{}, "", err
	}
	urlRes, err := delimited(LeftParen, func(s string) (result[string], error) { return isNot(RightParen, s) }, RightParen, afterClose.remaining)
	if err != nil {
		return HyperlinkData{}, "", err
	}
	return NewHyperlinkData(altRes.output, urlRes.output), urlRes.remaining, nil
}

// ParseElementCheckbox matches the literal "[x]" or "[ ]".
func ParseElementCheckbox(input string) (bool, string, error) {
	if r, err := tag(Checked, input); err == nil {
		return true, r.remaining, nil
	}
	if r, err := tag(Unchecked, input); err == nil {
		return false, r.remaining, nil
	}
	return false, "", errTag(input)
}

// startDelimiters is every literal that opens a non-plaintext fragment, plus
// the newline that terminates a line's worth of plaintext.
var startDelimiters = []string{
	BoldItalic1, BoldItalic2, Bold1, Bold2, Italic1, Italic2,
	BackTick, LeftBracket, LeftImage, NewLine,
}

// ParseElementPlaintext consumes one or more characters provided the
// remaining input does not begin with any start-delimiter or a newline.
// Fails with KindEof on empty input, KindNot if the very first position
// already matches a start-delimiter.
func ParseElementPlaintext(input string) (string, string, error) {
	if input == "" {
		return "", "", errEof(input)
	}
	if err := notStartsWithAny(input, startDelimiters...); err != nil {
		return "", "", err
	}
	i := 0
	for i < len(input) {
		rest := input[i:]
		if notStartsWithAny(rest, startDelimiters...) != nil {
			break
		}
		// advance by one rune, not one byte
		_, size := decodeRune(rest)
		i += size
	}
	if i == 0 {
		return "", "", errNot(input)
	}
	return input[:i], input[i:], nil
}

// decodeRune returns the first rune of s and its byte width.
func decodeRune(s string) (rune, int) {
	if s == "" {
		return 0, 0
	}
	return utf8.DecodeRuneInString(s)
}

// ParseElementMarkdownInline is the precedence-ordered dispatcher: italic,
// bold, bold_italic, code, image, link, checkbox, plaintext. Trying italic
// first is safe: its body may not contain the delimiter character, so on a
// "**" or "***" run the italic body is empty and italic fails, leaving the
// run to bold or bold_italic, which check their own delimiter length.
func ParseElementMarkdownInline(input string) (MdLineFragment, string, error) {
	if s, rest, err := ParseElementItalic(input); err == nil {
		return italicFrag(s), rest, nil
	}
	if s, rest, err := ParseElementBold(input); err == nil {
		return boldFrag(s), rest, nil
	}
	if s, rest, err := ParseElementBoldItalic(input); err == nil {
		return boldItalicFrag(s), rest, nil
	}
	if s, rest, err := ParseElementCode(input); err == nil {
		return codeFrag(s), rest, nil
	}
	if h, rest, err := ParseElementImage(input); err == nil {
		return imageFrag(h), rest, nil
	}
	if h, rest, err := ParseElementLink(input); err == nil {
		return linkFrag(h), rest, nil
	}
	if b, rest, err := ParseElementCheckbox(input); err == nil {
		return checkboxFrag(b), rest, nil
	}
	if s, rest, err := ParseElementPlaintext(input); err == nil {
		return plainFrag(s), rest, nil
	}
	// Every alternative failed; plaintext's error is the most informative
	// (Eof on empty input, Not on an unclosed/invalid delimiter run), so
	// surface that one.
	_, _, err := ParseElementPlaintext(input)
	return MdLineFragment{}, input, err
}

// ParseLine tokenizes an entire line into its fragment sequence. An unclosed
// delimiter at any point causes that run to fall back to plaintext one
// character at a time, per spec: callers never see a hard failure for a
// whole line, only for a single ParseElementMarkdownInline call.
func ParseLine(line string) []MdLineFragment {
	var frags []MdLineFragment
	rest := line
	for rest != "" {
		frag, next, err := ParseElementMarkdownInline(rest)
		if err != nil {
			// Fall back: consume one rune as plaintext and retry.
			r, size := decodeRune(rest)
			if size == 0 {
				break
			}
			frags = appendPlain(frags, string(r))
			rest = rest[size:]
			continue
		}
		frags = append(frags, frag)
		rest = next
	}
	return frags
}

// appendPlain merges consecutive single-rune plaintext fallbacks into the
// previous Plain fragment instead of emitting one fragment per rune.
func appendPlain(frags []MdLineFragment, s string) []MdLineFragment {
	if n := len(frags); n > 0 && frags[n-1].Kind == KindPlain {
		frags[n-1].Text += s
		return frags
	}
	return append(frags, plainFrag(s))
}
