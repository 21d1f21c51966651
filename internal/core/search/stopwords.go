package search

// DefaultStopwords 查詢中不具辨識度的常見填充詞
var DefaultStopwords = map[string]struct{}{
	"what":   {},
	"i":      {},
	"want":   {},
	"to":     {},
	"eat":    {},
	"give":   {},
	"me":     {},
	"please": {},
	"can":    {},
	"have":   {},
	"some":   {},
	"the":    {},
	"a":      {},
	"an":     {},
	"for":    {},
	"need":   {},
	"show":   {},
}
