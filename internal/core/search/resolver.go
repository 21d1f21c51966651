package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"nutrimed/internal/infrastructure/config"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Resolver 將自由輸入解析為目錄標題候選清單
// 先做子字串比對，沒有結果時退回模糊比對；整個流程不會失敗，
// 查無結果以空切片表示
type Resolver struct {
	titles      []string // 目錄順序，原始大小寫
	titlesLower []string
	stopwords   map[string]struct{}
	maxResults  int
	fuzzyCutoff float64
}

// NewResolver 建立查詢解析器；titles 需依目錄順序給定
func NewResolver(titles []string, cfg config.SearchConfig) *Resolver {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 6
	}
	cutoff := cfg.FuzzyCutoff
	if cutoff <= 0 {
		cutoff = 0.5
	}

	titlesLower := make([]string, len(titles))
	for i, t := range titles {
		titlesLower[i] = strings.ToLower(t)
	}

	return &Resolver{
		titles:      titles,
		titlesLower: titlesLower,
		stopwords:   DefaultStopwords,
		maxResults:  maxResults,
		fuzzyCutoff: cutoff,
	}
}

// Normalize 查詢正規化：轉小寫、去頭尾空白、以空白切詞，
// 再去掉停用詞與長度 1 以下的詞；詞序維持輸入順序
func (r *Resolver) Normalize(raw string) []string {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return nil
	}

	var tokens []string
	for _, w := range strings.Fields(text) {
		if _, stop := r.stopwords[w]; stop {
			continue
		}
		if utf8.RuneCountInString(w) <= 1 {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// Resolve 解析查詢並回傳最多 maxResults 個不重複標題
func (r *Resolver) Resolve(rawQuery string) []string {
	text := strings.ToLower(strings.TrimSpace(rawQuery))
	if text == "" {
		return nil
	}

	tokens := r.Normalize(rawQuery)
	results := r.matchSubstring(tokens)
	if len(results) == 0 {
		// 模糊比對使用整段正規化後的查詢，不是逐詞
		results = r.matchFuzzy(text)
	}

	// 去重保留先出現者；此處刻意用大小寫敏感比較：
	// 子字串路徑回傳目錄原始大小寫，模糊路徑回傳 Title Case，
	// 兩條路徑在單次呼叫中互斥，因此不會互相撞名
	seen := make(map[string]struct{}, len(results))
	deduped := results[:0]
	for _, title := range results {
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		deduped = append(deduped, title)
	}

	if len(deduped) > r.maxResults {
		deduped = deduped[:r.maxResults]
	}
	return deduped
}

// matchSubstring 目錄順序掃描：任一 token 是標題（小寫）的子字串即命中
func (r *Resolver) matchSubstring(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}

	var matched []string
	for i, lower := range r.titlesLower {
		for _, tok := range tokens {
			if strings.Contains(lower, tok) {
				matched = append(matched, r.titles[i])
				break
			}
		}
	}
	return matched
}

// fuzzyCandidate 模糊比對候選
type fuzzyCandidate struct {
	index int
	score float64
}

// matchFuzzy 模糊比對：對每個標題計算正規化編輯相似度，
// 達到門檻者依相似度遞減排序（同分依目錄順序），回傳 Title Case 形式
func (r *Resolver) matchFuzzy(query string) []string {
	var candidates []fuzzyCandidate
	for i, lower := range r.titlesLower {
		score := similarity(query, lower)
		if score >= r.fuzzyCutoff {
			candidates = append(candidates, fuzzyCandidate{index: i, score: score})
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	if len(candidates) > r.maxResults {
		candidates = candidates[:r.maxResults]
	}

	caser := cases.Title(language.English)
	results := make([]string, len(candidates))
	for i, c := range candidates {
		results[i] = caser.String(r.titlesLower[c.index])
	}
	return results
}

// similarity 正規化 Levenshtein 相似度：1 - 編輯距離/較長字串的字元數，
// 值域 0.0–1.0，完全相同為 1.0
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}
