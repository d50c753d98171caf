package transaction

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"vapor/internal/domain"
)

// ErrMalformedRecord covers every parse failure: unknown code, wrong field
// widths, bad numeric fields, trailing garbage. The record is skipped and
// the batch continues.
var ErrMalformedRecord = errors.New("geçersiz işlem kaydı")

var codePattern = regexp.MustCompile(`^\d{2}`)

// Parse turns one raw fixed-width record into a typed transaction. It is
// pure: no market state is read or written.
func Parse(raw string) (Transaction, error) {
	rawCode := codePattern.FindString(raw)
	if rawCode == "" {
		return nil, fmt.Errorf("%w: işlem kodu okunamadı", ErrMalformedRecord)
	}

	code, _ := strconv.Atoi(rawCode)

	spec, ok := typeTable[code]
	if !ok {
		return nil, fmt.Errorf("%w: bilinmeyen işlem kodu %s", ErrMalformedRecord, rawCode)
	}

	groups := spec.sequence.pattern.FindStringSubmatch(raw)
	if groups == nil {
		return nil, fmt.Errorf("%w: kayıt %s düzenine uymuyor", ErrMalformedRecord, spec.sequence.name)
	}

	b := base{txType: spec.txType, raw: raw}

	userIDs := 0
	for i, f := range spec.sequence.fields {
		value := strings.TrimSpace(groups[i+1])

		switch f {
		case fieldCode:
			// already decoded

		case fieldUserID, fieldOptionalUserID:
			if userIDs == 0 {
				b.userID1 = value
			} else {
				b.userID2 = value
			}
			userIDs++

		case fieldUserType:
			userType, ok := domain.ParseUserType(value)
			if !ok {
				return nil, fmt.Errorf("%w: bilinmeyen kullanıcı tipi %s", ErrMalformedRecord, value)
			}
			b.userType = userType

		case fieldGameID:
			b.gameID = value

		case fieldCredit:
			amount, err := decodeMinorUnits(value)
			if err != nil {
				return nil, err
			}
			b.credit = amount

		case fieldPrice:
			amount, err := decodeMinorUnits(value)
			if err != nil {
				return nil, err
			}
			b.price = amount

		case fieldDiscount:
			discount, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: indirim alanı çözümlenemedi", ErrMalformedRecord)
			}
			b.discount = discount
		}
	}

	return spec.build(b), nil
}

// decodeMinorUnits reads a "whole.cents" field into integer minor units,
// e.g. "000010.00" becomes 1000.
func decodeMinorUnits(value string) (int64, error) {
	whole, cents, ok := strings.Cut(value, ".")
	if !ok {
		return 0, fmt.Errorf("%w: tutar alanı çözümlenemedi", ErrMalformedRecord)
	}

	wholeUnits, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: tutar alanı çözümlenemedi", ErrMalformedRecord)
	}

	centUnits, err := strconv.ParseInt(cents, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: tutar alanı çözümlenemedi", ErrMalformedRecord)
	}

	return wholeUnits*100 + centUnits, nil
}
