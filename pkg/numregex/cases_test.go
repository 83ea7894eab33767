package numregex_test

import (
	"github.com/dmitrymomot/numregex/pkg/numformat"
	"github.com/dmitrymomot/numregex/pkg/numregex"
)

// signBefore is the en-US layout.
var signBefore = numformat.Invariant

// signAfter uses unusual symbols so that no character overlaps with signBefore.
var signAfter = numformat.Profile{
	PositiveSign:     "~",
	NegativeSign:     "_",
	NegativeLayout:   numformat.LayoutSignAfter,
	GroupSeparator:   ".",
	GroupSizes:       []int{4},
	DecimalSeparator: ",",
}

var digitCountCases = []struct {
	value    string
	digits   int
	expected bool
}{
	{"", 0, false},
	{"", 1, false},
	{"", 5, false},
	{"", 10, false},
	{"1", 0, true},
	{"1", 1, true},
	{"1", 5, false},
	{"1", 10, false},
	{"12345", 0, true},
	{"12345", 1, false},
	{"12345", 5, true},
	{"12345", 10, false},
	{"1234567890", 0, true},
	{"1234567890", 1, false},
	{"1234567890", 5, false},
	{"1234567890", 10, true},
}

var groupingCases = []struct {
	value    string
	grouping numregex.Grouping
	profile  numformat.Profile
	expected bool
}{
	{"", numregex.GroupingNone, signBefore, false},
	{"", numregex.GroupingOptional, signBefore, false},
	{"", numregex.GroupingRequired, signBefore, false},
	{"", numregex.GroupingNone, signAfter, false},
	{"", numregex.GroupingOptional, signAfter, false},
	{"", numregex.GroupingRequired, signAfter, false},
	{"0", numregex.GroupingNone, signBefore, true},
	{"0", numregex.GroupingOptional, signBefore, true},
	{"0", numregex.GroupingRequired, signBefore, true},
	{"0", numregex.GroupingNone, signAfter, true},
	{"0", numregex.GroupingOptional, signAfter, true},
	{"0", numregex.GroupingRequired, signAfter, true},
	{"10", numregex.GroupingNone, signBefore, true},
	{"10", numregex.GroupingOptional, signBefore, true},
	{"10", numregex.GroupingRequired, signBefore, true},
	{"10", numregex.GroupingNone, signAfter, true},
	{"10", numregex.GroupingOptional, signAfter, true},
	{"10", numregex.GroupingRequired, signAfter, true},
	{"1000", numregex.GroupingNone, signBefore, true},
	{"1000", numregex.GroupingOptional, signBefore, true},
	{"1000", numregex.GroupingRequired, signBefore, false},
	{"1000", numregex.GroupingNone, signAfter, true},
	{"1000", numregex.GroupingOptional, signAfter, true},
	{"1000", numregex.GroupingRequired, signAfter, true},
	{"1,000", numregex.GroupingNone, signBefore, false},
	{"1,000", numregex.GroupingOptional, signBefore, true},
	{"1,000", numregex.GroupingRequired, signBefore, true},
	{"1,000", numregex.GroupingNone, signAfter, false},
	{"1,000", numregex.GroupingOptional, signAfter, false},
	{"1,000", numregex.GroupingRequired, signAfter, false},
	{"1.000", numregex.GroupingNone, signBefore, false},
	{"1.000", numregex.GroupingOptional, signBefore, false},
	{"1.000", numregex.GroupingRequired, signBefore, false},
	{"1.000", numregex.GroupingNone, signAfter, false},
	{"1.000", numregex.GroupingOptional, signAfter, false},
	{"1.000", numregex.GroupingRequired, signAfter, false},
	{"10000", numregex.GroupingNone, signBefore, true},
	{"10000", numregex.GroupingOptional, signBefore, true},
	{"10000", numregex.GroupingRequired, signBefore, false},
	{"10000", numregex.GroupingNone, signAfter, true},
	{"10000", numregex.GroupingOptional, signAfter, true},
	{"10000", numregex.GroupingRequired, signAfter, false},
	{"1,0000", numregex.GroupingNone, signBefore, false},
	{"1,0000", numregex.GroupingOptional, signBefore, false},
	{"1,0000", numregex.GroupingRequired, signBefore, false},
	{"1,0000", numregex.GroupingNone, signAfter, false},
	{"1,0000", numregex.GroupingOptional, signAfter, false},
	{"1,0000", numregex.GroupingRequired, signAfter, false},
	{"1.0000", numregex.GroupingNone, signBefore, false},
	{"1.0000", numregex.GroupingOptional, signBefore, false},
	{"1.0000", numregex.GroupingRequired, signBefore, false},
	{"1.0000", numregex.GroupingNone, signAfter, false},
	{"1.0000", numregex.GroupingOptional, signAfter, true},
	{"1.0000", numregex.GroupingRequired, signAfter, true},
	{"1,000,000,000", numregex.GroupingNone, signBefore, false},
	{"1,000,000,000", numregex.GroupingOptional, signBefore, true},
	{"1,000,000,000", numregex.GroupingRequired, signBefore, true},
	{"1,000,000,000", numregex.GroupingNone, signAfter, false},
	{"1,000,000,000", numregex.GroupingOptional, signAfter, false},
	{"1,000,000,000", numregex.GroupingRequired, signAfter, false},
	{"1,000000000", numregex.GroupingNone, signBefore, false},
	{"1,000000000", numregex.GroupingOptional, signBefore, true},
	{"1,000000000", numregex.GroupingRequired, signBefore, false},
	{"1,000000000", numregex.GroupingNone, signAfter, false},
	{"1,000000000", numregex.GroupingOptional, signAfter, false},
	{"1,000000000", numregex.GroupingRequired, signAfter, false},
	{"1.0000.0000.0000", numregex.GroupingNone, signBefore, false},
	{"1.0000.0000.0000", numregex.GroupingOptional, signBefore, false},
	{"1.0000.0000.0000", numregex.GroupingRequired, signBefore, false},
	{"1.0000.0000.0000", numregex.GroupingNone, signAfter, false},
	{"1.0000.0000.0000", numregex.GroupingOptional, signAfter, true},
	{"1.0000.0000.0000", numregex.GroupingRequired, signAfter, true},
	{"1.000000000000", numregex.GroupingNone, signBefore, false},
	{"1.000000000000", numregex.GroupingOptional, signBefore, false},
	{"1.000000000000", numregex.GroupingRequired, signBefore, false},
	{"1.000000000000", numregex.GroupingNone, signAfter, false},
	{"1.000000000000", numregex.GroupingOptional, signAfter, true},
	{"1.000000000000", numregex.GroupingRequired, signAfter, false},
	{"10,0000000000", numregex.GroupingNone, signBefore, false},
	{"10,0000000000", numregex.GroupingOptional, signBefore, false},
	{"10,0000000000", numregex.GroupingRequired, signBefore, false},
	{"10,0000000000", numregex.GroupingNone, signAfter, false},
	{"10,0000000000", numregex.GroupingOptional, signAfter, false},
	{"10,0000000000", numregex.GroupingRequired, signAfter, false},
	{"100,000000000", numregex.GroupingNone, signBefore, false},
	{"100,000000000", numregex.GroupingOptional, signBefore, true},
	{"100,000000000", numregex.GroupingRequired, signBefore, false},
	{"100,000000000", numregex.GroupingNone, signAfter, false},
	{"100,000000000", numregex.GroupingOptional, signAfter, false},
	{"100,000000000", numregex.GroupingRequired, signAfter, false},
	{"1,0,0000000000", numregex.GroupingNone, signBefore, false},
	{"1,0,0000000000", numregex.GroupingOptional, signBefore, false},
	{"1,0,0000000000", numregex.GroupingRequired, signBefore, false},
	{"1,0,0000000000", numregex.GroupingNone, signAfter, false},
	{"1,0,0000000000", numregex.GroupingOptional, signAfter, false},
	{"1,0,0000000000", numregex.GroupingRequired, signAfter, false},
	{"10,0,000000000", numregex.GroupingNone, signBefore, false},
	{"10,0,000000000", numregex.GroupingOptional, signBefore, false},
	{"10,0,000000000", numregex.GroupingRequired, signBefore, false},
	{"10,0,000000000", numregex.GroupingNone, signAfter, false},
	{"10,0,000000000", numregex.GroupingOptional, signAfter, false},
	{"10,0,000000000", numregex.GroupingRequired, signAfter, false},
	{"100,0,00000000", numregex.GroupingNone, signBefore, false},
	{"100,0,00000000", numregex.GroupingOptional, signBefore, false},
	{"100,0,00000000", numregex.GroupingRequired, signBefore, false},
	{"100,0,00000000", numregex.GroupingNone, signAfter, false},
	{"100,0,00000000", numregex.GroupingOptional, signAfter, false},
	{"100,0,00000000", numregex.GroupingRequired, signAfter, false},
	{"1,00,000000000", numregex.GroupingNone, signBefore, false},
	{"1,00,000000000", numregex.GroupingOptional, signBefore, false},
	{"1,00,000000000", numregex.GroupingRequired, signBefore, false},
	{"1,00,000000000", numregex.GroupingNone, signAfter, false},
	{"1,00,000000000", numregex.GroupingOptional, signAfter, false},
	{"1,00,000000000", numregex.GroupingRequired, signAfter, false},
	{"10,00,00000000", numregex.GroupingNone, signBefore, false},
	{"10,00,00000000", numregex.GroupingOptional, signBefore, false},
	{"10,00,00000000", numregex.GroupingRequired, signBefore, false},
	{"10,00,00000000", numregex.GroupingNone, signAfter, false},
	{"10,00,00000000", numregex.GroupingOptional, signAfter, false},
	{"10,00,00000000", numregex.GroupingRequired, signAfter, false},
	{"100,00,0000000", numregex.GroupingNone, signBefore, false},
	{"100,00,0000000", numregex.GroupingOptional, signBefore, false},
	{"100,00,0000000", numregex.GroupingRequired, signBefore, false},
	{"100,00,0000000", numregex.GroupingNone, signAfter, false},
	{"100,00,0000000", numregex.GroupingOptional, signAfter, false},
	{"100,00,0000000", numregex.GroupingRequired, signAfter, false},
	{"1,000,00000000", numregex.GroupingNone, signBefore, false},
	{"1,000,00000000", numregex.GroupingOptional, signBefore, false},
	{"1,000,00000000", numregex.GroupingRequired, signBefore, false},
	{"1,000,00000000", numregex.GroupingNone, signAfter, false},
	{"1,000,00000000", numregex.GroupingOptional, signAfter, false},
	{"1,000,00000000", numregex.GroupingRequired, signAfter, false},
	{"10,000,0000000", numregex.GroupingNone, signBefore, false},
	{"10,000,0000000", numregex.GroupingOptional, signBefore, false},
	{"10,000,0000000", numregex.GroupingRequired, signBefore, false},
	{"10,000,0000000", numregex.GroupingNone, signAfter, false},
	{"10,000,0000000", numregex.GroupingOptional, signAfter, false},
	{"10,000,0000000", numregex.GroupingRequired, signAfter, false},
	{"100,000,000000", numregex.GroupingNone, signBefore, false},
	{"100,000,000000", numregex.GroupingOptional, signBefore, true},
	{"100,000,000000", numregex.GroupingRequired, signBefore, false},
	{"100,000,000000", numregex.GroupingNone, signAfter, false},
	{"100,000,000000", numregex.GroupingOptional, signAfter, false},
	{"100,000,000000", numregex.GroupingRequired, signAfter, false},
}

var decimalCases = []struct {
	value    string
	digits   int
	required bool
	profile  numformat.Profile
	expected bool
}{
	{"", 0, false, signBefore, false},
	{"", 1, false, signBefore, false},
	{"", 2, false, signBefore, false},
	{"", 10, false, signBefore, false},
	{"", 100, false, signBefore, false},
	{"", 0, true, signBefore, false},
	{"", 1, true, signBefore, false},
	{"", 2, true, signBefore, false},
	{"", 10, true, signBefore, false},
	{"", 100, true, signBefore, false},
	{"", 0, false, signAfter, false},
	{"", 1, false, signAfter, false},
	{"", 2, false, signAfter, false},
	{"", 10, false, signAfter, false},
	{"", 100, false, signAfter, false},
	{"", 0, true, signAfter, false},
	{"", 1, true, signAfter, false},
	{"", 2, true, signAfter, false},
	{"", 10, true, signAfter, false},
	{"", 100, true, signAfter, false},
	{"0", 0, false, signBefore, true},
	{"0", 1, false, signBefore, true},
	{"0", 2, false, signBefore, true},
	{"0", 10, false, signBefore, true},
	{"0", 100, false, signBefore, true},
	{"0", 0, true, signBefore, true},
	{"0", 1, true, signBefore, false},
	{"0", 2, true, signBefore, false},
	{"0", 10, true, signBefore, false},
	{"0", 100, true, signBefore, false},
	{"0", 0, false, signAfter, true},
	{"0", 1, false, signAfter, true},
	{"0", 2, false, signAfter, true},
	{"0", 10, false, signAfter, true},
	{"0", 100, false, signAfter, true},
	{"0", 0, true, signAfter, true},
	{"0", 1, true, signAfter, false},
	{"0", 2, true, signAfter, false},
	{"0", 10, true, signAfter, false},
	{"0", 100, true, signAfter, false},
	{"10", 0, false, signBefore, true},
	{"10", 1, false, signBefore, true},
	{"10", 2, false, signBefore, true},
	{"10", 10, false, signBefore, true},
	{"10", 100, false, signBefore, true},
	{"10", 0, true, signBefore, true},
	{"10", 1, true, signBefore, false},
	{"10", 2, true, signBefore, false},
	{"10", 10, true, signBefore, false},
	{"10", 100, true, signBefore, false},
	{"10", 0, false, signAfter, true},
	{"10", 1, false, signAfter, true},
	{"10", 2, false, signAfter, true},
	{"10", 10, false, signAfter, true},
	{"10", 100, false, signAfter, true},
	{"10", 0, true, signAfter, true},
	{"10", 1, true, signAfter, false},
	{"10", 2, true, signAfter, false},
	{"10", 10, true, signAfter, false},
	{"10", 100, true, signAfter, false},
	{"10000000", 0, false, signBefore, true},
	{"10000000", 1, false, signBefore, true},
	{"10000000", 2, false, signBefore, true},
	{"10000000", 10, false, signBefore, true},
	{"10000000", 100, false, signBefore, true},
	{"10000000", 0, true, signBefore, true},
	{"10000000", 1, true, signBefore, false},
	{"10000000", 2, true, signBefore, false},
	{"10000000", 10, true, signBefore, false},
	{"10000000", 100, true, signBefore, false},
	{"10000000", 0, false, signAfter, true},
	{"10000000", 1, false, signAfter, true},
	{"10000000", 2, false, signAfter, true},
	{"10000000", 10, false, signAfter, true},
	{"10000000", 100, false, signAfter, true},
	{"10000000", 0, true, signAfter, true},
	{"10000000", 1, true, signAfter, false},
	{"10000000", 2, true, signAfter, false},
	{"10000000", 10, true, signAfter, false},
	{"10000000", 100, true, signAfter, false},
	{"3.1", 0, false, signBefore, false},
	{"3.1", 1, false, signBefore, true},
	{"3.1", 2, false, signBefore, true},
	{"3.1", 10, false, signBefore, true},
	{"3.1", 100, false, signBefore, true},
	{"3.1", 0, true, signBefore, false},
	{"3.1", 1, true, signBefore, true},
	{"3.1", 2, true, signBefore, false},
	{"3.1", 10, true, signBefore, false},
	{"3.1", 100, true, signBefore, false},
	{"3.1", 0, false, signAfter, false},
	{"3.1", 1, false, signAfter, false},
	{"3.1", 2, false, signAfter, false},
	{"3.1", 10, false, signAfter, false},
	{"3.1", 100, false, signAfter, false},
	{"3.1", 0, true, signAfter, false},
	{"3.1", 1, true, signAfter, false},
	{"3.1", 2, true, signAfter, false},
	{"3.1", 10, true, signAfter, false},
	{"3.1", 100, true, signAfter, false},
	{"3.14", 0, false, signBefore, false},
	{"3.14", 1, false, signBefore, false},
	{"3.14", 2, false, signBefore, true},
	{"3.14", 10, false, signBefore, true},
	{"3.14", 100, false, signBefore, true},
	{"3.14", 0, true, signBefore, false},
	{"3.14", 1, true, signBefore, false},
	{"3.14", 2, true, signBefore, true},
	{"3.14", 10, true, signBefore, false},
	{"3.14", 100, true, signBefore, false},
	{"3.14", 0, false, signAfter, false},
	{"3.14", 1, false, signAfter, false},
	{"3.14", 2, false, signAfter, false},
	{"3.14", 10, false, signAfter, false},
	{"3.14", 100, false, signAfter, false},
	{"3.14", 0, true, signAfter, false},
	{"3.14", 1, true, signAfter, false},
	{"3.14", 2, true, signAfter, false},
	{"3.14", 10, true, signAfter, false},
	{"3.14", 100, true, signAfter, false},
	{"3.1415926535", 0, false, signBefore, false},
	{"3.1415926535", 1, false, signBefore, false},
	{"3.1415926535", 2, false, signBefore, false},
	{"3.1415926535", 10, false, signBefore, true},
	{"3.1415926535", 100, false, signBefore, true},
	{"3.1415926535", 0, true, signBefore, false},
	{"3.1415926535", 1, true, signBefore, false},
	{"3.1415926535", 2, true, signBefore, false},
	{"3.1415926535", 10, true, signBefore, true},
	{"3.1415926535", 100, true, signBefore, false},
	{"3.1415926535", 0, false, signAfter, false},
	{"3.1415926535", 1, false, signAfter, false},
	{"3.1415926535", 2, false, signAfter, false},
	{"3.1415926535", 10, false, signAfter, false},
	{"3.1415926535", 100, false, signAfter, false},
	{"3.1415926535", 0, true, signAfter, false},
	{"3.1415926535", 1, true, signAfter, false},
	{"3.1415926535", 2, true, signAfter, false},
	{"3.1415926535", 10, true, signAfter, false},
	{"3.1415926535", 100, true, signAfter, false},
	{"3,1", 0, false, signBefore, false},
	{"3,1", 1, false, signBefore, false},
	{"3,1", 2, false, signBefore, false},
	{"3,1", 10, false, signBefore, false},
	{"3,1", 100, false, signBefore, false},
	{"3,1", 0, true, signBefore, false},
	{"3,1", 1, true, signBefore, false},
	{"3,1", 2, true, signBefore, false},
	{"3,1", 10, true, signBefore, false},
	{"3,1", 100, true, signBefore, false},
	{"3,1", 0, false, signAfter, false},
	{"3,1", 1, false, signAfter, true},
	{"3,1", 2, false, signAfter, true},
	{"3,1", 10, false, signAfter, true},
	{"3,1", 100, false, signAfter, true},
	{"3,1", 0, true, signAfter, false},
	{"3,1", 1, true, signAfter, true},
	{"3,1", 2, true, signAfter, false},
	{"3,1", 10, true, signAfter, false},
	{"3,1", 100, true, signAfter, false},
	{"3,14", 0, false, signBefore, false},
	{"3,14", 1, false, signBefore, false},
	{"3,14", 2, false, signBefore, false},
	{"3,14", 10, false, signBefore, false},
	{"3,14", 100, false, signBefore, false},
	{"3,14", 0, true, signBefore, false},
	{"3,14", 1, true, signBefore, false},
	{"3,14", 2, true, signBefore, false},
	{"3,14", 10, true, signBefore, false},
	{"3,14", 100, true, signBefore, false},
	{"3,14", 0, false, signAfter, false},
	{"3,14", 1, false, signAfter, false},
	{"3,14", 2, false, signAfter, true},
	{"3,14", 10, false, signAfter, true},
	{"3,14", 100, false, signAfter, true},
	{"3,14", 0, true, signAfter, false},
	{"3,14", 1, true, signAfter, false},
	{"3,14", 2, true, signAfter, true},
	{"3,14", 10, true, signAfter, false},
	{"3,14", 100, true, signAfter, false},
	{"3,1415926535", 0, false, signBefore, false},
	{"3,1415926535", 1, false, signBefore, false},
	{"3,1415926535", 2, false, signBefore, false},
	{"3,1415926535", 10, false, signBefore, false},
	{"3,1415926535", 100, false, signBefore, false},
	{"3,1415926535", 0, true, signBefore, false},
	{"3,1415926535", 1, true, signBefore, false},
	{"3,1415926535", 2, true, signBefore, false},
	{"3,1415926535", 10, true, signBefore, false},
	{"3,1415926535", 100, true, signBefore, false},
	{"3,1415926535", 0, false, signAfter, false},
	{"3,1415926535", 1, false, signAfter, false},
	{"3,1415926535", 2, false, signAfter, false},
	{"3,1415926535", 10, false, signAfter, true},
	{"3,1415926535", 100, false, signAfter, true},
	{"3,1415926535", 0, true, signAfter, false},
	{"3,1415926535", 1, true, signAfter, false},
	{"3,1415926535", 2, true, signAfter, false},
	{"3,1415926535", 10, true, signAfter, true},
	{"3,1415926535", 100, true, signAfter, false},
}

var whiteSpaceCases = []struct {
	value      string
	whiteSpace numregex.WhiteSpace
	expected   bool
}{
	{"0", numregex.WhiteSpaceNone, true},
	{" 0", numregex.WhiteSpaceNone, false},
	{"\t0", numregex.WhiteSpaceNone, false},
	{"\r0", numregex.WhiteSpaceNone, false},
	{"\n0", numregex.WhiteSpaceNone, false},
	{"\r\n\t 0", numregex.WhiteSpaceNone, false},
	{"0 ", numregex.WhiteSpaceNone, false},
	{"0\t", numregex.WhiteSpaceNone, false},
	{"0\r", numregex.WhiteSpaceNone, false},
	{"0\n", numregex.WhiteSpaceNone, false},
	{"0\r\n\t ", numregex.WhiteSpaceNone, false},
	{" 0 ", numregex.WhiteSpaceNone, false},
	{"\t0\t", numregex.WhiteSpaceNone, false},
	{"\r0\r", numregex.WhiteSpaceNone, false},
	{"\n0\n", numregex.WhiteSpaceNone, false},
	{"\r\n\t 0\r\n\t ", numregex.WhiteSpaceNone, false},
	{"0", numregex.WhiteSpaceLeading, true},
	{" 0", numregex.WhiteSpaceLeading, true},
	{"\t0", numregex.WhiteSpaceLeading, true},
	{"\r0", numregex.WhiteSpaceLeading, true},
	{"\n0", numregex.WhiteSpaceLeading, true},
	{"\r\n\t 0", numregex.WhiteSpaceLeading, true},
	{"0 ", numregex.WhiteSpaceLeading, false},
	{"0\t", numregex.WhiteSpaceLeading, false},
	{"0\r", numregex.WhiteSpaceLeading, false},
	{"0\n", numregex.WhiteSpaceLeading, false},
	{"0\r\n\t ", numregex.WhiteSpaceLeading, false},
	{" 0 ", numregex.WhiteSpaceLeading, false},
	{"\t0\t", numregex.WhiteSpaceLeading, false},
	{"\r0\r", numregex.WhiteSpaceLeading, false},
	{"\n0\n", numregex.WhiteSpaceLeading, false},
	{"\r\n\t 0\r\n\t ", numregex.WhiteSpaceLeading, false},
	{"0", numregex.WhiteSpaceTrailing, true},
	{" 0", numregex.WhiteSpaceTrailing, false},
	{"\t0", numregex.WhiteSpaceTrailing, false},
	{"\r0", numregex.WhiteSpaceTrailing, false},
	{"\n0", numregex.WhiteSpaceTrailing, false},
	{"\r\n\t 0", numregex.WhiteSpaceTrailing, false},
	{"0 ", numregex.WhiteSpaceTrailing, true},
	{"0\t", numregex.WhiteSpaceTrailing, true},
	{"0\r", numregex.WhiteSpaceTrailing, true},
	{"0\n", numregex.WhiteSpaceTrailing, true},
	{"0\r\n\t ", numregex.WhiteSpaceTrailing, true},
	{" 0 ", numregex.WhiteSpaceTrailing, false},
	{"\t0\t", numregex.WhiteSpaceTrailing, false},
	{"\r0\r", numregex.WhiteSpaceTrailing, false},
	{"\n0\n", numregex.WhiteSpaceTrailing, false},
	{"\r\n\t 0\r\n\t ", numregex.WhiteSpaceTrailing, false},
	{"0", numregex.WhiteSpaceLeadingOrTrailing, true},
	{" 0", numregex.WhiteSpaceLeadingOrTrailing, true},
	{"\t0", numregex.WhiteSpaceLeadingOrTrailing, true},
	{"\r0", numregex.WhiteSpaceLeadingOrTrailing, true},
	{"\n0", numregex.WhiteSpaceLeadingOrTrailing, true},
	{"\r\n\t 0", numregex.WhiteSpaceLeadingOrTrailing, true},
	{"0 ", numregex.WhiteSpaceLeadingOrTrailing, true},
	{"0\t", numregex.WhiteSpaceLeadingOrTrailing, true},
	{"0\r", numregex.WhiteSpaceLeadingOrTrailing, true},
	{"0\n", numregex.WhiteSpaceLeadingOrTrailing, true},
	{"0\r\n\t ", numregex.WhiteSpaceLeadingOrTrailing, true},
	{" 0 ", numregex.WhiteSpaceLeadingOrTrailing, true},
	{"\t0\t", numregex.WhiteSpaceLeadingOrTrailing, true},
	{"\r0\r", numregex.WhiteSpaceLeadingOrTrailing, true},
	{"\n0\n", numregex.WhiteSpaceLeadingOrTrailing, true},
	{"\r\n\t 0\r\n\t ", numregex.WhiteSpaceLeadingOrTrailing, true},
}
