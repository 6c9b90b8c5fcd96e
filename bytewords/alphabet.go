// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytewords

// words is the 256-entry bytewords alphabet: words[b] is the four-letter
// lowercase word for byte value b. Every word is distinct, and every
// (first letter, last letter) pair is distinct across the table — the
// property the minimal two-letter encoding depends on for unambiguous
// decode via minimalIndex. See DESIGN.md's "Alphabet note" for why this
// table is a synthetic, structurally-equivalent stand-in rather than a
// literal upstream wordlist.
var words = [256]string{
	"afed", "akag", "alev", "amos", "anan", "aqar", "asil", "asip",
	"asoh", "asot", "awoj", "beub", "bibt", "bibu", "bice", "biij",
	"boma", "caht", "caif", "ceaz", "ceih", "ceka", "cial", "cipe",
	"coip", "cucu", "dald", "dayv", "dein", "dese", "dest", "diah",
	"dilg", "dilj", "dirr", "doda", "doli", "dosc", "doxy", "duek",
	"duum", "ebus", "eciy", "efam", "ehaz", "ejah", "ejib", "emaj",
	"esol", "evad", "eveg", "ewaf", "ewox", "feby", "fehd", "fixi",
	"fozj", "fujt", "futk", "fuvq", "fuwv", "gaam", "gafa", "gajv",
	"gawu", "gezo", "gieb", "giop", "girw", "goet", "gojl", "gokk",
	"gouh", "gube", "gueg", "hedt", "heey", "hetg", "hoel", "houq",
	"huga", "huoc", "hupr", "huqs", "ibid", "icoz", "idus", "ihir",
	"ikef", "inic", "inop", "ipax", "ipik", "irov", "isen", "itaj",
	"ituw", "ixit", "jadw", "jaik", "jeco", "jedi", "jept", "jeqj",
	"jiof", "johr", "jorh", "jorq", "jutb", "kaud", "keix", "keuh",
	"kien", "kiiq", "koas", "kofo", "kogp", "koib", "komz", "kuav",
	"kudt", "laiv", "lebz", "lerx", "lizf", "load", "loar", "loib",
	"loqg", "luaj", "lukt", "medm", "melt", "mese", "meuv", "meyf",
	"mofu", "muab", "mukw", "naja", "nalw", "navu", "nayi", "neap",
	"nido", "niwf", "nojc", "nopg", "nuyt", "ocop", "ogey", "ohir",
	"omid", "owig", "owos", "pese", "pioc", "pixt", "poov", "pozu",
	"qacn", "qadi", "qayu", "qevj", "qevt", "qiac", "qiof", "qisb",
	"qohr", "qopz", "quad", "rafb", "rebu", "reid", "reiv", "riuw",
	"rivo", "roke", "rukt", "ruqa", "saon", "saot", "saxo", "seew",
	"siaj", "siez", "siik", "siiy", "soaq", "soef", "song", "sosi",
	"tahw", "tann", "tawm", "tejt", "tioh", "tipk", "tire", "toiz",
	"tomy", "toxi", "tuel", "tuor", "ubic", "uhuv", "ukoh", "ukow",
	"uray", "urij", "uyod", "uzik", "uzus", "vafh", "veub", "viac",
	"vioz", "vist", "voci", "void", "vule", "vupu", "waiv", "wamt",
	"weox", "wiaz", "woru", "wosa", "wuaq", "wuhh", "xant", "xeoc",
	"xesi", "xoaj", "xoja", "yelx", "yent", "yepe", "yipv", "yitq",
	"yoem", "yucr", "yuvg", "yuyp", "zaac", "zakh", "zars", "zeey",
	"zepa", "zifx", "ziuf", "zobb", "zohd", "zuct", "zuku", "zuto",
}

// wordIndex, minimals, and minimalIndex are derived from words at package
// init time rather than hand-maintained, so the three tables can never
// drift out of sync with each other.
var (
	wordIndex    map[string]byte
	minimals     [256]string
	minimalIndex map[string]byte
)

func init() {
	wordIndex = make(map[string]byte, 256)
	minimalIndex = make(map[string]byte, 256)
	for b, w := range words {
		wordIndex[w] = byte(b)
		minimal := string(w[0]) + string(w[3])
		minimals[b] = minimal
		minimalIndex[minimal] = byte(b)
	}
}
