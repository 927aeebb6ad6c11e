package diagnosis

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

var pastForms = set(
	"went", "ate", "saw", "came", "took", "made", "gave", "got", "had", "did",
	"said", "told", "knew", "thought", "brought", "bought", "caught", "taught",
	"ran", "swam", "drove", "wrote", "spoke", "drank", "slept", "felt", "met",
	"left", "found", "kept", "sat", "stood", "heard", "understood", "began",
	"forgot", "flew", "grew", "threw", "wore", "sang", "won", "lost", "paid",
	"sold", "sent", "spent", "built", "meant", "gone", "eaten", "seen",
	"taken", "given", "written", "spoken", "known", "done", "been", "was", "were",
)

var overRegularised = set(
	"goed", "eated", "seed", "comed", "taked", "maked", "gived", "getted",
	"sayed", "telled", "knowed", "thinked", "bringed", "buyed", "catched",
	"teached", "runned", "swimmed", "drived", "writed", "speaked", "drinked",
	"sleeped", "feeled", "meeted", "leaved", "finded", "keeped", "standed",
	"heared", "beginned", "forgetted", "flyed", "growed", "throwed", "weared",
	"singed", "winned", "losed", "payed", "selled", "sended", "spended",
)

var notPast = set("indeed", "hundred", "naked", "wicked", "sacred", "kindred", "bread", "embed")

var tenseAuxiliaries = set("will", "would", "did", "had", "was", "were", "been", "won't", "didn't")

// agreementPairs lists be/have/do forms that differ only in person or number.
var agreementPairs = map[string]map[string]bool{
	"is":      set("are", "am"),
	"are":     set("is", "am"),
	"am":      set("is", "are"),
	"was":     set("were"),
	"were":    set("was"),
	"has":     set("have"),
	"have":    set("has"),
	"do":      set("does"),
	"does":    set("do"),
	"don't":   set("doesn't"),
	"doesn't": set("don't"),
	"isn't":   set("aren't"),
	"aren't":  set("isn't"),
	"wasn't":  set("weren't"),
	"weren't": set("wasn't"),
	"hasn't":  set("haven't"),
	"haven't": set("hasn't"),
}

var subjectPronouns = set("i", "you", "we", "they", "he", "she", "it")

// irregularPlurals maps singular to plural.
var irregularPlurals = map[string]string{
	"child":  "children",
	"person": "people",
	"man":    "men",
	"woman":  "women",
	"foot":   "feet",
	"tooth":  "teeth",
	"mouse":  "mice",
	"goose":  "geese",
	"knife":  "knives",
	"wife":   "wives",
	"life":   "lives",
	"leaf":   "leaves",
}

var prepositions = set(
	"to", "at", "in", "on", "for", "with", "about", "from", "by", "of",
	"into", "onto", "under", "over", "between", "during", "since", "until",
)
