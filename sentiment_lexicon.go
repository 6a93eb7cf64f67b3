package textpipe

import "strings"

// lexiconEntry scores a single word: polarity in [-1, 1], subjectivity in
// [0, 1].
type lexiconEntry struct {
	polarity     float64
	subjectivity float64
}

// sentimentLexicon bundles the per-language word scores with the negation
// and modifier words of that language.
type sentimentLexicon struct {
	words     map[string]lexiconEntry
	modifiers map[string]float64 // positive values intensify, negative diminish
	negations map[string]bool
}

func (l *sentimentLexicon) lookup(word string) (lexiconEntry, bool) {
	entry, ok := l.words[strings.ToLower(word)]
	return entry, ok
}

// lexiconFor returns the sentiment lexicon for an ISO 639-1 language code.
func lexiconFor(lang string) (*sentimentLexicon, bool) {
	lex, ok := lexicons[lang]
	return lex, ok
}

// SentimentLanguages returns the language codes with a bundled sentiment
// lexicon.
func SentimentLanguages() []string {
	return []string{"en", "fr", "it", "nl"}
}

var lexicons = map[string]*sentimentLexicon{
	"en": {
		words: map[string]lexiconEntry{
			"amazing":       {0.8, 0.9},
			"awesome":       {1.0, 1.0},
			"awful":         {-1.0, 1.0},
			"bad":           {-0.7, 0.7},
			"beautiful":     {0.85, 1.0},
			"best":          {1.0, 0.3},
			"boring":        {-0.8, 1.0},
			"brilliant":     {0.9, 0.9},
			"broken":        {-0.4, 0.4},
			"cheap":         {-0.4, 0.7},
			"comfortable":   {0.5, 0.8},
			"delicious":     {1.0, 1.0},
			"disappointing": {-0.6, 0.7},
			"dreadful":      {-0.9, 1.0},
			"excellent":     {1.0, 1.0},
			"fantastic":     {0.9, 0.9},
			"fine":          {0.4, 0.6},
			"fun":           {0.6, 0.8},
			"good":          {0.7, 0.6},
			"great":         {0.8, 0.75},
			"happy":         {0.8, 1.0},
			"hate":          {-0.8, 0.9},
			"helpful":       {0.6, 0.6},
			"horrible":      {-1.0, 1.0},
			"impressive":    {0.7, 0.9},
			"interesting":   {0.5, 0.5},
			"lovely":        {0.85, 0.95},
			"love":          {0.5, 0.6},
			"mediocre":      {-0.3, 0.5},
			"nice":          {0.6, 1.0},
			"okay":          {0.3, 0.5},
			"outstanding":   {1.0, 1.0},
			"painful":       {-0.7, 0.8},
			"perfect":       {1.0, 1.0},
			"pleasant":      {0.7, 0.9},
			"poor":          {-0.6, 0.7},
			"reliable":      {0.6, 0.5},
			"sad":           {-0.5, 1.0},
			"slow":          {-0.3, 0.4},
			"terrible":      {-1.0, 1.0},
			"ugly":          {-0.7, 0.9},
			"unhappy":       {-0.6, 0.9},
			"unreliable":    {-0.6, 0.6},
			"useful":        {0.5, 0.4},
			"useless":       {-0.7, 0.6},
			"wonderful":     {1.0, 1.0},
			"worst":         {-1.0, 0.3},
			"wrong":         {-0.5, 0.5},
		},
		modifiers: map[string]float64{
			"absolutely": 0.5,
			"completely": 0.4,
			"extremely":  0.5,
			"fairly":     -0.2,
			"hardly":     -0.5,
			"highly":     0.4,
			"quite":      0.2,
			"really":     0.3,
			"slightly":   -0.4,
			"somewhat":   -0.3,
			"totally":    0.4,
			"truly":      0.4,
			"very":       0.3,
		},
		negations: map[string]bool{
			"never":   true,
			"no":      true,
			"none":    true,
			"nor":     true,
			"not":     true,
			"nothing": true,
			"n't":     true,
		},
	},
	"nl": {
		words: map[string]lexiconEntry{
			"aangenaam":       {0.7, 0.9},
			"afschuwelijk":    {-0.9, 1.0},
			"briljant":        {0.9, 0.9},
			"fantastisch":     {0.9, 0.9},
			"fijn":            {0.6, 0.8},
			"geweldig":        {0.8, 0.9},
			"goed":            {0.7, 0.6},
			"heerlijk":        {0.9, 1.0},
			"interessant":     {0.5, 0.5},
			"leuk":            {0.6, 0.95},
			"leuke":           {0.6, 0.95},
			"lelijk":          {-0.7, 0.9},
			"mooi":            {0.8, 1.0},
			"perfect":         {1.0, 1.0},
			"prachtig":        {0.9, 1.0},
			"prima":           {0.5, 0.6},
			"saai":            {-0.8, 1.0},
			"slecht":          {-0.7, 0.7},
			"teleurstellend":  {-0.6, 0.7},
			"verschrikkelijk": {-1.0, 1.0},
			"vervelend":       {-0.5, 0.8},
			"vreselijk":       {-0.9, 1.0},
			"waardeloos":      {-0.8, 0.7},
		},
		modifiers: map[string]float64{
			"echt":       0.3,
			"enorm":      0.4,
			"erg":        0.3,
			"heel":       0.3,
			"ietwat":     -0.3,
			"nauwelijks": -0.5,
			"redelijk":   -0.2,
			"zeer":       0.4,
		},
		negations: map[string]bool{
			"geen":  true,
			"niet":  true,
			"nooit": true,
		},
	},
	"fr": {
		words: map[string]lexiconEntry{
			"affreux":      {-0.9, 1.0},
			"agréable":     {0.7, 0.9},
			"beau":         {0.8, 1.0},
			"bon":          {0.7, 0.6},
			"décevant":     {-0.6, 0.7},
			"délicieux":    {0.9, 1.0},
			"ennuyeux":     {-0.7, 1.0},
			"excellent":    {1.0, 1.0},
			"fantastique":  {0.9, 0.9},
			"formidable":   {0.8, 0.9},
			"génial":       {0.9, 0.9},
			"horrible":     {-1.0, 1.0},
			"inutile":      {-0.6, 0.6},
			"intéressant":  {0.5, 0.5},
			"laid":         {-0.7, 0.9},
			"magnifique":   {0.9, 1.0},
			"mauvais":      {-0.7, 0.7},
			"merveilleux":  {1.0, 1.0},
			"nul":          {-0.8, 0.8},
			"parfait":      {1.0, 1.0},
			"superbe":      {0.9, 1.0},
			"terrible":     {-0.8, 0.9},
			"triste":       {-0.5, 1.0},
		},
		modifiers: map[string]float64{
			"absolument":  0.5,
			"assez":       -0.2,
			"extrêmement": 0.5,
			"légèrement":  -0.4,
			"peu":         -0.4,
			"très":        0.3,
			"vraiment":    0.3,
		},
		negations: map[string]bool{
			"aucun":  true,
			"jamais": true,
			"ne":     true,
			"pas":    true,
			"rien":   true,
		},
	},
	"it": {
		words: map[string]lexiconEntry{
			"bello":        {0.8, 1.0},
			"brutto":       {-0.7, 0.9},
			"buono":        {0.7, 0.6},
			"cattivo":      {-0.7, 0.7},
			"delizioso":    {0.9, 1.0},
			"deludente":    {-0.6, 0.7},
			"eccellente":   {1.0, 1.0},
			"fantastico":   {0.9, 0.9},
			"felice":       {0.8, 1.0},
			"inutile":      {-0.6, 0.6},
			"interessante": {0.5, 0.5},
			"magnifico":    {0.9, 1.0},
			"meraviglioso": {1.0, 1.0},
			"noioso":       {-0.8, 1.0},
			"orribile":     {-1.0, 1.0},
			"perfetto":     {1.0, 1.0},
			"pessimo":      {-0.9, 0.8},
			"splendido":    {0.9, 1.0},
			"terribile":    {-0.9, 1.0},
			"triste":       {-0.5, 1.0},
		},
		modifiers: map[string]float64{
			"abbastanza":    -0.2,
			"assolutamente": 0.5,
			"davvero":       0.3,
			"estremamente":  0.5,
			"leggermente":   -0.4,
			"molto":         0.3,
			"poco":          -0.4,
		},
		negations: map[string]bool{
			"mai":     true,
			"nessuno": true,
			"niente":  true,
			"non":     true,
		},
	},
}
