package docx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// WordprocessingML measures lengths in three different units depending on
// the element: twentieths of a point (twips) for page geometry and spacing,
// half points for font sizes, and EMUs for drawing extents.
const (
	twipsPerPoint = 20
	twipsPerCm    = 567
	emusPerCm     = 360000
	emusPerPixel  = 9525 // assumes 96 DPI
)

// CmToTwips converts centimeters to twentieths of a point.
func CmToTwips(cm float64) int {
	return int(math.Round(cm * twipsPerCm))
}

// TwipsToCm converts twentieths of a point to centimeters.
func TwipsToCm(twips int) float64 {
	return float64(twips) / twipsPerCm
}

// PointsToTwips converts points to twentieths of a point.
func PointsToTwips(pt float64) int {
	return int(math.Round(pt * twipsPerPoint))
}

// TwipsToPoints converts twentieths of a point to points.
func TwipsToPoints(twips int) float64 {
	return float64(twips) / twipsPerPoint
}

// PointsToHalfPoints converts points to the half-point unit used by w:sz.
func PointsToHalfPoints(pt float64) int {
	return int(math.Round(pt * 2))
}

// HalfPointsToPoints converts w:sz values back to points.
func HalfPointsToPoints(half int) float64 {
	return float64(half) / 2
}

// CmToEMU converts centimeters to English Metric Units.
func CmToEMU(cm float64) int64 {
	return int64(math.Round(cm * emusPerCm))
}

// PixelsToEMU converts pixels to EMUs assuming 96 DPI.
func PixelsToEMU(px int) int64 {
	return int64(px) * emusPerPixel
}

// ParseHexColor validates a hex RGB color string such as "#FF0000" or
// "ff0000" and returns the normalized uppercase six-digit form without
// the leading hash.
func ParseHexColor(s string) (string, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return "", fmt.Errorf("invalid color %q: want six hex digits", s)
	}
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return "", fmt.Errorf("invalid color %q: %v", s, err)
	}
	return strings.ToUpper(h), nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
