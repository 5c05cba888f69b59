// Package perception turns free-form multilingual counter commands into one
// of four canonical operations: increment, decrement, set_counter and
// reset_counter.
//
// Architecture:
//
//	User Input: "카운터를 증가시켜줘"
//	     |
//	Normalize()          ordered rewrite rules -> canonical English text
//	     |
//	Upstream.Generate()  opaque LLM call, returns raw text
//	     |
//	ParseCall()          extracts call:<name>{<args>} if present
//	     |
//	CanonicalName()      folds case variants and model quirks
//	     |
//	Reconcile()          keyword-evidence correction pass
//	     |
//	Call{Name, Args}
//
// The rule table and name map are immutable and may be read concurrently by
// any number of callers. Every function in this package is total over
// arbitrary input text.
package perception

import "regexp"

// Rule rewrites all occurrences of Pattern with Replacement. Rules fire in
// table order; each rule sees the output of all prior rules, so order is a
// correctness invariant (compound forms must be claimed before the bare stems
// they contain).
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

func r(pattern, replacement string) Rule {
	return Rule{Pattern: regexp.MustCompile(pattern), Replacement: replacement}
}

// rewriteRules is the full multilingual rule table. Grouped by concern; the
// relative order of the groups matters as much as the order within them.
var rewriteRules = []Rule{
	// --- 1. Numeric shorthand --------------------------------------------
	// A literal signed one is a relative step, not a set target. Must run
	// before any rule that binds bare digits.
	r(`(^|\s)\+1\b`, `${1}increment`),
	r(`(^|\s)-1\b`, `${1}decrement`),

	// --- 2. Multi-word idioms --------------------------------------------
	// Claimed before single-keyword rules so constituents are not rewritten
	// independently ("go down" must never become "go decrement").
	r(`(?i)\bgo\s+up\b`, `increment`),
	r(`(?i)\bgo\s+down\b`, `decrement`),
	r(`(?i)\bcount\s+up\b`, `increment`),
	r(`(?i)\bcount\s+down\b`, `decrement`),
	r(`(?i)\bone\s+more\b`, `increment`),
	r(`(?i)\bone\s+less\b`, `decrement`),
	r(`(?i)\badd\s+one\b`, `increment`),
	r(`(?i)\btake\s+one\s+off\b`, `decrement`),
	r(`(?i)\bstart\s+over\b`, `reset`),
	r(`(?i)\bstart\s+again\b`, `reset`),
	r(`(?i)\bzero\s+out\b`, `reset`),
	r(`(?i)\bback\s+to\s+zero\b`, `reset`),
	r(`カウントアップ`, `increment`),
	r(`カウントダウン`, `decrement`),
	r(`元に戻して|元に戻す`, `reset`),
	r(`하나\s*더`, `increment`),
	r(`하나\s*빼`, `decrement`),
	r(`더\s*해`, `increment`),
	r(`더\s*빼`, `decrement`),

	// --- 3. Compound / politeness verb forms -----------------------------
	// Longest forms first: each contains its bare stem as a substring, and
	// the reset idioms end in the politeness suffixes stripped by group 6.
	r(`増やしてください|増やして下さい|増やして`, `increment`),
	r(`増加させてください|増加させて`, `increment`),
	r(`減らしてください|減らして下さい|減らして`, `decrement`),
	r(`減少させてください|減少させて`, `decrement`),
	r(`リセットしてください|リセットして下さい|リセットして`, `reset`),
	r(`初期化してください|初期化して`, `reset`),
	r(`クリアしてください|クリアして`, `reset`),
	r(`증가시켜\s*주세요|증가시켜\s*줘|증가시켜`, `increment`),
	r(`감소시켜\s*주세요|감소시켜\s*줘|감소시켜`, `decrement`),
	r(`올려\s*주세요|올려\s*줘`, `increment`),
	r(`내려\s*주세요|내려\s*줘`, `decrement`),
	r(`리셋해\s*주세요|리셋해\s*줘|리셋하세요`, `reset`),
	r(`초기화해\s*주세요|초기화해\s*줘|초기화하세요`, `reset`),
	r(`더해\s*주세요|더해\s*줘`, `increment`),
	r(`빼\s*주세요|빼\s*줘`, `decrement`),

	// --- 4. Single-keyword verb/noun substitution ------------------------
	// Japanese. リセット is listed before every セット rule in group 5; the
	// scripts do not interfere across languages but duplicates within one
	// language (設定/セット, 세팅/설정) are each enumerated.
	r(`増やす|増やし|増加|加算|足して|足す|プラス|上げて|上げる|アップ`, `increment`),
	r(`減らす|減らし|減少|減算|引いて|引く|マイナス|下げて|下げる|ダウン`, `decrement`),
	r(`リセット|初期化|クリア`, `reset`),
	r(`設定|セット|変更`, `set`),
	r(`ゼロ|零`, `0`),
	// Korean.
	r(`증가|올려|올리|더하|플러스|추가`, `increment`),
	r(`감소|줄여|줄이|내려|내리|빼기|마이너스|차감|빼`, `decrement`),
	r(`리셋|초기화|클리어`, `reset`),
	r(`설정|세팅|셋팅|세트|맞춰|맞추|바꿔|바꾸|변경`, `set`),
	r(`영(\s*(?:으로|로))`, `0$1`),

	// --- 5. Numeric-context binding --------------------------------------
	// Verbs are already English here; these bind a captured number to the
	// canonical "set to N" form. The bare particle rules come last so the
	// set-binding forms win first.
	r(`(\d+)\s*に\s*set`, `set to $1`),
	r(`(\d+)\s*(?:으로|로)\s*set`, `set to $1`),
	r(`(\d+)\s*にして(?:ください)?`, `set to $1`),
	r(`set\s*(?:に|으로|로)?\s*(\d+)`, `set to $1`),
	r(`(\d+)\s*に`, `to $1 `),
	r(`(\d+)\s*(?:으로|로)`, `to $1 `),

	// --- 6. Trailing suffix stripping ------------------------------------
	// End-anchored only; mid-string stems stay untouched. The multi-character
	// idioms above were registered first so these cannot truncate them.
	r(`(?:してください|して下さい|してくれ|しなさい|して|します|する|です|ます|ください)$`, ``),
	r(`(?:해\s*주세요|해\s*줘|주세요|하세요|해요|해라|하기|해|줘)$`, ``),

	// --- 7. Generic noun / particle rewriting ----------------------------
	// Trailing separator keeps whitespace tokenization unambiguous. Nouns
	// first so the particle rules see the English forms.
	r(`カウンター|カウンタ|カウント`, `counter `),
	r(`数値|数字|値`, `number `),
	r(`카운터|카운트`, `counter `),
	r(`숫자|값`, `number `),
	r(`(counter|number|value)\s*(?:を|は|が|も)`, `$1 `),
	r(`(counter|number|value)\s*(?:를|을|은|는|이|가)`, `$1 `),

	// --- 8. English synonym folding --------------------------------------
	// Word-boundary anchored so substrings of longer words are untouched.
	r(`(?i)\b(?:increase|add|plus|bump|raise|up)\b`, `increment`),
	r(`(?i)\b(?:decrease|subtract|minus|lower|reduce|down)\b`, `decrement`),
	r(`(?i)\b(?:clear|default|restart)\b`, `reset`),
}

// Rules returns the ordered rule table. The slice is shared and must not be
// mutated.
func Rules() []Rule {
	return rewriteRules
}
