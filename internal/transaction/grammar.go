package transaction

import (
	"regexp"
	"strings"
)

// Fields are fixed-width and separated by a single literal space, so the
// separator is part of the layout: a wrong width shifts every later field
// and the anchored whole-line pattern rejects the record.
type field int

const (
	fieldCode           field = iota // 2 digits, zero padded
	fieldUserType                    // AA, BS, SS or FS
	fieldUserID                      // 15 chars, non-space first, right padded
	fieldGameID                      // 25 chars, non-space first, right padded
	fieldDiscount                    // DD.DD percent
	fieldCredit                      // DDDDDD.DD in whole units, decoded to minor units
	fieldPrice                       // DDD.DD in whole units, decoded to minor units
	fieldOptionalUserID              // 15 arbitrary chars, may be all spaces
)

var fieldPatterns = map[field]string{
	fieldCode:           `(\d{2})`,
	fieldUserType:       `(AA|BS|SS|FS)`,
	fieldUserID:         `(\S.{14})`,
	fieldGameID:         `(\S.{24})`,
	fieldDiscount:       `(\d{2}\.\d{2})`,
	fieldCredit:         `(\d{6}\.\d{2})`,
	fieldPrice:          `(\d{3}\.\d{2})`,
	fieldOptionalUserID: `(.{15})`,
}

const fieldDelimiter = " "

// sequence is one of the five per-code field layouts, with its whole-line
// pattern anchored at both ends so partial matches are rejected.
type sequence struct {
	name    string
	fields  []field
	pattern *regexp.Regexp
}

func newSequence(name string, fields ...field) *sequence {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fieldPatterns[f])
	}

	return &sequence{
		name:    name,
		fields:  fields,
		pattern: regexp.MustCompile("^" + strings.Join(parts, fieldDelimiter) + "$"),
	}
}

var (
	// XX UUUUUUUUUUUUUUU TT CCCCCCCCC
	sequenceXUTC = newSequence("XUTC", fieldCode, fieldUserID, fieldUserType, fieldCredit)
	// XX UUUUUUUUUUUUUUU SSSSSSSSSSSSSSS CCCCCCCCC
	sequenceXUSC = newSequence("XUSC", fieldCode, fieldUserID, fieldUserID, fieldCredit)
	// XX IIIIIIIIIIIIIIIIIIIIIIIII SSSSSSSSSSSSSSS DD.DD PPP.PP
	sequenceXISDP = newSequence("XISDP", fieldCode, fieldGameID, fieldUserID, fieldDiscount, fieldPrice)
	// XX IIIIIIIIIIIIIIIIIIIIIIIII SSSSSSSSSSSSSSS UUUUUUUUUUUUUUU
	sequenceXISU = newSequence("XISU", fieldCode, fieldGameID, fieldUserID, fieldUserID)
	// XX IIIIIIIIIIIIIIIIIIIIIIIII UUUUUUUUUUUUUUU SSSSSSSSSSSSSSS
	sequenceXIUS = newSequence("XIUS", fieldCode, fieldGameID, fieldUserID, fieldOptionalUserID)
)
