package distractor

import "strings"

// verbTable lists common verbs as "base third past gerund".
const verbTable = `
be is was being
have has had having
do does did doing
go goes went going
get gets got getting
make makes made making
take takes took taking
come comes came coming
see sees saw seeing
know knows knew knowing
think thinks thought thinking
say says said saying
tell tells told telling
give gives gave giving
find finds found finding
use uses used using
work works worked working
call calls called calling
try tries tried trying
ask asks asked asking
need needs needed needing
feel feels felt feeling
leave leaves left leaving
put puts put putting
mean means meant meaning
keep keeps kept keeping
let lets let letting
begin begins began beginning
seem seems seemed seeming
help helps helped helping
talk talks talked talking
turn turns turned turning
start starts started starting
show shows showed showing
hear hears heard hearing
play plays played playing
run runs ran running
move moves moved moving
like likes liked liking
live lives lived living
believe believes believed believing
bring brings brought bringing
write writes wrote writing
sit sits sat sitting
stand stands stood standing
lose loses lost losing
pay pays paid paying
meet meets met meeting
learn learns learned learning
change changes changed changing
lead leads led leading
understand understands understood understanding
watch watches watched watching
follow follows followed following
stop stops stopped stopping
speak speaks spoke speaking
read reads read reading
spend spends spent spending
grow grows grew growing
open opens opened opening
walk walks walked walking
win wins won winning
teach teaches taught teaching
offer offers offered offering
remember remembers remembered remembering
love loves loved loving
appear appears appeared appearing
buy buys bought buying
wait waits waited waiting
serve serves served serving
send sends sent sending
expect expects expected expecting
build builds built building
stay stays stayed staying
fall falls fell falling
cut cuts cut cutting
reach reaches reached reaching
cook cooks cooked cooking
clean cleans cleaned cleaning
pass passes passed passing
sell sells sold selling
decide decides decided deciding
return returns returned returning
explain explains explained explaining
hope hopes hoped hoping
visit visits visited visiting
carry carries carried carrying
break breaks broke breaking
receive receives received receiving
agree agrees agreed agreeing
eat eats ate eating
drink drinks drank drinking
sleep sleeps slept sleeping
swim swims swam swimming
drive drives drove driving
fly flies flew flying
sing sings sang singing
dance dances danced dancing
study studies studied studying
listen listens listened listening
travel travels traveled traveling
wash washes washed washing
catch catches caught catching
choose chooses chose choosing
close closes closed closing
draw draws drew drawing
forget forgets forgot forgetting
answer answers answered answering
arrive arrives arrived arriving
want wants wanted wanting
look looks looked looking
enjoy enjoys enjoyed enjoying
prefer prefers preferred preferring
practice practices practiced practicing
finish finishes finished finishing
shop shops shopped shopping
climb climbs climbed climbing
laugh laughs laughed laughing
smile smiles smiled smiling
cry cries cried crying
jump jumps jumped jumping
rest rests rested resting
throw throws threw throwing
wear wears wore wearing
ride rides rode riding
fix fixes fixed fixing
plan plans planned planning
paint paints painted painting
borrow borrows borrowed borrowing
`

// nounTable lists common nouns as "singular plural".
const nounTable = `
book books
apple apples
house houses
child children
person people
man men
woman women
car cars
city cities
country countries
dog dogs
cat cats
friend friends
family families
teacher teachers
student students
school schools
class classes
lesson lessons
word words
day days
week weeks
month months
year years
hour hours
minute minutes
morning mornings
night nights
job jobs
office offices
table tables
chair chairs
window windows
door doors
room rooms
bed beds
phone phones
computer computers
bus buses
train trains
ticket tickets
street streets
park parks
shop shops
market markets
bank banks
hotel hotels
restaurant restaurants
kitchen kitchens
garden gardens
box boxes
glass glasses
dish dishes
baby babies
story stories
party parties
foot feet
tooth teeth
mouse mice
knife knives
leaf leaves
wife wives
game games
song songs
movie movies
picture pictures
letter letters
bag bags
shoe shoes
shirt shirts
dress dresses
hat hats
coat coats
river rivers
mountain mountains
beach beaches
island islands
flower flowers
tree trees
bird birds
horse horses
egg eggs
orange oranges
banana bananas
potato potatoes
tomato tomatoes
sandwich sandwiches
cup cups
plate plates
bottle bottles
key keys
doctor doctors
nurse nurses
driver drivers
brother brothers
sister sisters
mother mothers
father fathers
parent parents
question questions
idea ideas
problem problems
holiday holidays
trip trips
airport airports
plane planes
bike bikes
pen pens
pencil pencils
page pages
hand hands
eye eyes
face faces
name names
number numbers
color colors
place places
`

var adjectives = strings.Fields(`
big small happy sad good bad new old young long short tall hot cold warm cool
easy hard fast slow early late busy free rich poor cheap expensive clean dirty
quiet loud beautiful ugly strong weak heavy light bright dark full empty hungry
thirsty tired angry kind funny friendly nice great high low deep wide narrow
soft sweet sour salty fresh dry wet safe dangerous simple difficult important
interesting boring famous popular modern ancient careful lucky healthy sick
quick ready sure true wrong different similar strange lovely calm brave proud
polite rude honest lazy clever smart
`)

// Prepositions offered for the preposition hint.
var Prepositions = []string{"to", "at", "in", "on", "for", "with", "about", "from", "by"}

// padWords fill option sets that are still short after every other source.
var padWords = []string{"the", "and", "for", "are", "but", "not", "you", "all", "can", "her", "was", "one", "our"}

var articles = []string{"a", "an", "the"}

// verbForms holds one verb's four forms.
type verbForms struct {
	base, third, past, gerund string
}

func (v verbForms) all() []string { return []string{v.base, v.third, v.past, v.gerund} }

// formSlot identifies which of a verb's forms a word is.
type formSlot int

const (
	slotBase formSlot = iota
	slotThird
	slotPast
	slotGerund
)

func (v verbForms) slot(s formSlot) string { return v.all()[s] }

type nounForms struct {
	singular, plural string
}

var (
	verbs []verbForms
	nouns []nounForms

	// verbIndex maps every verb form to its entry and the first slot it fills.
	verbIndex = map[string]verbRef{}
	// nounIndex maps singular and plural forms to their entry.
	nounIndex = map[string]nounRef{}
	adjIndex  = map[string]bool{}
)

type verbRef struct {
	idx  int
	slot formSlot
}

type nounRef struct {
	idx    int
	plural bool
}

func init() {
	for _, line := range strings.Split(strings.TrimSpace(verbTable), "\n") {
		f := strings.Fields(line)
		v := verbForms{f[0], f[1], f[2], f[3]}
		for s, w := range v.all() {
			if _, ok := verbIndex[w]; !ok {
				verbIndex[w] = verbRef{idx: len(verbs), slot: formSlot(s)}
			}
		}
		verbs = append(verbs, v)
	}
	for _, line := range strings.Split(strings.TrimSpace(nounTable), "\n") {
		f := strings.Fields(line)
		nounIndex[f[0]] = nounRef{idx: len(nouns)}
		nounIndex[f[1]] = nounRef{idx: len(nouns), plural: true}
		nouns = append(nouns, nounForms{f[0], f[1]})
	}
	for _, a := range adjectives {
		adjIndex[a] = true
	}
}

// IsKnownWord reports whether w (any case) is in one of the closed word
// lists.
func IsKnownWord(w string) bool {
	w = strings.ToLower(w)
	_, v := verbIndex[w]
	_, n := nounIndex[w]
	return v || n || adjIndex[w] || isClosedClass(w)
}

func isClosedClass(w string) bool {
	for _, list := range [][]string{Prepositions, padWords, articles} {
		for _, x := range list {
			if x == w {
				return true
			}
		}
	}
	return false
}

// IsContentWord reports whether w is a verb, noun or adjective from the word
// tables that is long enough to be worth blanking out.
func IsContentWord(w string) bool {
	w = strings.ToLower(w)
	if len(w) <= 3 {
		return false
	}
	_, v := verbIndex[w]
	_, n := nounIndex[w]
	return (v || n || adjIndex[w]) && !isClosedClass(w)
}

// HintFor suggests a hint for blanking w: third-person verb forms get
// [HintThirdPerson], other verb forms [HintVerbForms], plural nouns
// [HintPlural]. Anything else gets [HintNone].
func HintFor(w string) Hint {
	w = strings.ToLower(w)
	if ref, ok := verbIndex[w]; ok {
		if ref.slot == slotThird {
			return HintThirdPerson
		}
		return HintVerbForms
	}
	if isPluralNoun(w) {
		return HintPlural
	}
	return HintNone
}
