package keycodec

import "fmt"

// words maps each byte value to a four-letter word. The table has the
// property that every word is uniquely identified by its first and
// last letters, which is what the minimal encoding relies on.
var words = [256]string{
	"able", "acid", "also", "apex", "aqua", "arch", "atom", "aunt",
	"away", "axis", "back", "bald", "barn", "belt", "beta", "bias",
	"blue", "body", "brag", "brew", "bulb", "buzz", "calm", "cash",
	"cats", "chef", "city", "claw", "code", "cola", "cook", "cost",
	"crux", "curl", "cusp", "cyan", "dark", "data", "days", "deli",
	"dice", "diet", "door", "down", "draw", "drop", "drum", "dull",
	"duty", "each", "easy", "echo", "edge", "epic", "even", "exam",
	"exit", "eyes", "fact", "fair", "fern", "figs", "film", "fish",
	"fizz", "flap", "flew", "flux", "foxy", "free", "frog", "fuel",
	"fund", "gala", "game", "gear", "gems", "gift", "girl", "glow",
	"good", "gray", "grim", "guru", "gush", "gyro", "half", "hang",
	"hard", "hawk", "heat", "help", "high", "hill", "holy", "hope",
	"horn", "huts", "iced", "idea", "idle", "inch", "inky", "into",
	"iris", "iron", "item", "jade", "jazz", "join", "jolt", "jowl",
	"judo", "jugs", "jump", "junk", "jury", "keep", "keno", "kept",
	"keys", "kick", "kiln", "king", "kite", "kiwi", "knob", "lamb",
	"lava", "lazy", "leaf", "legs", "liar", "limp", "lion", "list",
	"logo", "loud", "love", "luau", "luck", "lung", "main", "many",
	"math", "maze", "memo", "menu", "meow", "mild", "mint", "miss",
	"monk", "nail", "navy", "need", "news", "next", "noon", "note",
	"numb", "obey", "oboe", "omit", "onyx", "open", "oval", "owls",
	"paid", "part", "peck", "play", "plus", "poem", "pool", "pose",
	"puff", "puma", "purr", "quad", "quiz", "race", "ramp", "real",
	"redo", "rich", "road", "rock", "roof", "ruby", "ruin", "runs",
	"rust", "safe", "saga", "scar", "sets", "silk", "skew", "slot",
	"soap", "solo", "song", "stub", "surf", "swan", "taco", "task",
	"taxi", "tent", "tied", "time", "tiny", "toil", "tomb", "toys",
	"trip", "tuna", "twin", "ugly", "undo", "unit", "urge", "user",
	"vast", "very", "veto", "vial", "vibe", "view", "visa", "void",
	"vows", "wall", "wand", "warm", "wasp", "wave", "waxy", "webs",
	"what", "when", "whiz", "wolf", "work", "yank", "yawn", "yell",
	"yoga", "yurt", "zaps", "zero", "zest", "zinc", "zone", "zoom",
}

// minimalIndex maps the (first letter, last letter) pair of a word to
// its byte value, for decoding the minimal style.
var minimalIndex = func() map[[2]byte]byte {
	m := make(map[[2]byte]byte, 256)
	for v, w := range words {
		m[[2]byte{w[0], w[len(w)-1]}] = byte(v)
	}
	return m
}()

// encodeMinimal encodes data as bytewords minimal style: the first and
// last letter of each byte's word, concatenated.
func encodeMinimal(data []byte) string {
	out := make([]byte, 0, len(data)*2)
	for _, b := range data {
		w := words[b]
		out = append(out, w[0], w[len(w)-1])
	}
	return string(out)
}

// decodeMinimal reverses encodeMinimal. Odd-length input and letter
// pairs outside the table are malformed.
func decodeMinimal(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("bytewords: odd length %d", len(s))
	}
	out := make([]byte, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		v, ok := minimalIndex[[2]byte{s[i], s[i+1]}]
		if !ok {
			return nil, fmt.Errorf("bytewords: unknown letter pair %q", s[i:i+2])
		}
		out = append(out, v)
	}
	return out, nil
}
