// Copyright Security Ronin, 2026. All rights reserved.

// Package mgrs converts MGRS grid references to and from geographic
// coordinates in WGS 84 decimal degrees.
//
// A reference resolves to full UTM coordinates through the standard
// lettering scheme: 100km column letters run in 8-letter windows whose
// origin (A, J, or S) cycles every three zones, row letters cycle A-V with
// the origin shifted to F on even zones, and the latitude-band letter
// disambiguates the 2,000km row-letter repeat. The UTM-to-geographic math
// is delegated to github.com/im7mortal/UTM.
package mgrs

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/im7mortal/UTM"
)

const (
	// columnLetters and rowLetters omit I and O, which the grid never assigns.
	columnLetters = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	rowLetters    = "ABCDEFGHJKLMNPQRSTUV"

	// columnOrigins holds the window origin per zone (zone-1 mod 3).
	columnOrigins = "AJS"

	squareSize = 100000.0  // metres per 100km square
	rowRepeat  = 2000000.0 // metres before row letters repeat

	maxDigits = 10
)

// bandMinNorthing gives, per latitude band, the minimum UTM northing of
// the band (false northing included south of the equator). It selects the
// correct 2,000km row-letter cycle during decoding. Values per GEOTRANS.
var bandMinNorthing = map[byte]float64{
	'C': 1100000, 'D': 2000000, 'E': 2800000, 'F': 3700000, 'G': 4600000,
	'H': 5500000, 'J': 6400000, 'K': 7300000, 'L': 8200000, 'M': 9100000,
	'N': 0, 'P': 800000, 'Q': 1700000, 'R': 2600000, 'S': 3500000,
	'T': 4400000, 'U': 5300000, 'V': 6200000, 'W': 7000000, 'X': 7900000,
}

// Converter adapts the package functions to the single-method interface
// the conversion pipeline consumes.
type Converter struct{}

// ToLatLon implements the pipeline's Converter contract.
func (Converter) ToLatLon(ref string) (float64, float64, error) {
	return ToLatLon(ref)
}

// reference is a parsed but not yet resolved grid reference.
type reference struct {
	zone   int
	band   byte
	column byte
	row    byte
	digits string
}

// ToLatLon converts a normalized (whitespace-free) grid reference to
// decimal degrees. The result is the south-west corner of the referenced
// cell, at whatever precision the digit count implies.
func ToLatLon(ref string) (float64, float64, error) {
	r, err := parse(ref)
	if err != nil {
		return 0, 0, err
	}

	easting, err := squareEasting(r.zone, r.column)
	if err != nil {
		return 0, 0, fmt.Errorf("grid reference %q: %w", ref, err)
	}
	northing, err := squareNorthing(r.zone, r.row)
	if err != nil {
		return 0, 0, fmt.Errorf("grid reference %q: %w", ref, err)
	}

	// Row letters repeat every 2,000km; the band letter picks the cycle.
	for northing < bandMinNorthing[r.band] {
		northing += rowRepeat
	}

	if half := len(r.digits) / 2; half > 0 {
		scale := math.Pow(10, float64(5-half))
		e, _ := strconv.Atoi(r.digits[:half])
		n, _ := strconv.Atoi(r.digits[half:])
		easting += float64(e) * scale
		northing += float64(n) * scale
	}

	lat, lon, err := UTM.ToLatLon(easting, northing, r.zone, string(r.band))
	if err != nil {
		return 0, 0, fmt.Errorf("grid reference %q: %w", ref, err)
	}
	return lat, lon, nil
}

// FromLatLon encodes a geographic coordinate as a grid reference with
// precision digits per axis (0 to 5, so 100km down to 1m cells). The
// reference names the cell containing the point.
func FromLatLon(lat, lon float64, precision int) (string, error) {
	if precision < 0 || precision > 5 {
		return "", fmt.Errorf("precision %d out of range 0-5", precision)
	}

	// northern=true would make the library return a bare hemisphere letter;
	// the encoding below needs the latitude band, so keep it false.
	easting, northing, zone, band, err := UTM.FromLatLon(lat, lon, false)
	if err != nil {
		return "", fmt.Errorf("encoding %v,%v: %w", lat, lon, err)
	}

	colStart := strings.IndexByte(columnLetters, columnOrigins[(zone-1)%3])
	col := columnLetters[(colStart+int(easting/squareSize)-1)%len(columnLetters)]

	rowStart := 0
	if zone%2 == 0 {
		rowStart = strings.IndexByte(rowLetters, 'F')
	}
	rowPos := int(math.Mod(northing, rowRepeat) / squareSize)
	row := rowLetters[(rowStart+rowPos)%len(rowLetters)]

	if precision == 0 {
		return fmt.Sprintf("%d%s%c%c", zone, band, col, row), nil
	}

	scale := math.Pow(10, float64(5-precision))
	e := int(math.Mod(easting, squareSize) / scale)
	n := int(math.Mod(northing, squareSize) / scale)
	return fmt.Sprintf("%d%s%c%c%0*d%0*d", zone, band, col, row, precision, e, precision, n), nil
}

// parse splits a normalized reference into zone, band, square letters, and
// the precision digits. It owns structural legality; geographic legality
// is left to the UTM conversion.
func parse(ref string) (reference, error) {
	s := strings.ToUpper(strings.TrimSpace(ref))

	i := 0
	for i < len(s) && i < 2 && isDigit(s[i]) {
		i++
	}
	if i == 0 {
		return reference{}, fmt.Errorf("grid reference %q: missing zone number", ref)
	}
	zone, _ := strconv.Atoi(s[:i])
	if zone < 1 || zone > 60 {
		return reference{}, fmt.Errorf("grid reference %q: zone %d out of range 1-60", ref, zone)
	}

	if len(s) < i+3 {
		return reference{}, fmt.Errorf("grid reference %q: truncated", ref)
	}
	band, col, row := s[i], s[i+1], s[i+2]
	if _, ok := bandMinNorthing[band]; !ok {
		return reference{}, fmt.Errorf("grid reference %q: invalid latitude band %c", ref, band)
	}

	digits := s[i+3:]
	for j := 0; j < len(digits); j++ {
		if !isDigit(digits[j]) {
			return reference{}, fmt.Errorf("grid reference %q: unexpected character %c", ref, digits[j])
		}
	}
	if len(digits) > maxDigits {
		return reference{}, fmt.Errorf("grid reference %q: too many digits", ref)
	}
	if len(digits)%2 != 0 {
		return reference{}, fmt.Errorf("grid reference %q: easting/northing digits must split evenly", ref)
	}

	return reference{zone: zone, band: band, column: col, row: row, digits: digits}, nil
}

// squareEasting maps a column letter to the 100km easting of its square.
// Each zone accepts an 8-letter window starting at A, J, or S.
func squareEasting(zone int, col byte) (float64, error) {
	idx := strings.IndexByte(columnLetters, col)
	if idx < 0 {
		return 0, fmt.Errorf("invalid column letter %c", col)
	}
	pos := idx - strings.IndexByte(columnLetters, columnOrigins[(zone-1)%3])
	if pos < 0 || pos >= 8 {
		return 0, fmt.Errorf("column letter %c not valid in zone %d", col, zone)
	}
	return float64(pos+1) * squareSize, nil
}

// squareNorthing maps a row letter to its northing within the 2,000km
// repeat. Even zones shift the row origin to F.
func squareNorthing(zone int, row byte) (float64, error) {
	idx := strings.IndexByte(rowLetters, row)
	if idx < 0 {
		return 0, fmt.Errorf("invalid row letter %c", row)
	}
	start := 0
	if zone%2 == 0 {
		start = strings.IndexByte(rowLetters, 'F')
	}
	pos := (idx - start + len(rowLetters)) % len(rowLetters)
	return float64(pos) * squareSize, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
