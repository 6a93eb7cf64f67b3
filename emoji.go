package textpipe

import (
	"github.com/forPelevin/gomoji"
)

// Emojis returns the distinct emojis in the cleaned text, each with its CLDR
// name and a sentiment score from the Emoji Sentiment Ranking table. Emojis
// outside the table score 0.
func (d *Doc) Emojis() []Emoji {
	if d.emojis != nil {
		return d.emojis
	}

	found := gomoji.FindAll(d.Clean())
	emojis := make([]Emoji, 0, len(found))
	for _, e := range found {
		emojis = append(emojis, Emoji{
			Character: e.Character,
			Name:      e.UnicodeName,
			Sentiment: emojiSentiment[e.Character],
		})
	}
	d.emojis = emojis
	return emojis
}

// emojiSentiment holds scores from the Emoji Sentiment Ranking (Kralj Novak
// et al., 2015) for frequently used emojis, on a -1 to 1 scale.
var emojiSentiment = map[string]float64{
	"😀": 0.572,
	"😁": 0.446,
	"😂": 0.221,
	"😃": 0.557,
	"😄": 0.505,
	"😅": 0.382,
	"😆": 0.416,
	"😇": 0.574,
	"😈": 0.337,
	"😉": 0.445,
	"😊": 0.644,
	"😋": 0.634,
	"😌": 0.484,
	"😍": 0.678,
	"😎": 0.478,
	"😏": 0.332,
	"😐": -0.059,
	"😑": -0.122,
	"😒": -0.256,
	"😓": -0.054,
	"😔": -0.146,
	"😕": -0.397,
	"😖": -0.206,
	"😘": 0.701,
	"😜": 0.455,
	"😞": -0.368,
	"😠": -0.482,
	"😡": -0.382,
	"😢": -0.093,
	"😣": -0.276,
	"😤": -0.231,
	"😩": -0.247,
	"😫": -0.232,
	"😭": -0.093,
	"😱": 0.011,
	"😳": 0.243,
	"😴": 0.128,
	"😷": -0.232,
	"👍": 0.521,
	"👎": -0.451,
	"👏": 0.520,
	"🙏": 0.418,
	"💪": 0.555,
	"🔥": 0.139,
	"✨": 0.640,
	"❤": 0.746,
	"💔": -0.121,
	"💕": 0.674,
	"🎉": 0.701,
	"☹": -0.438,
}
