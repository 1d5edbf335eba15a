// Package content holds the text shown between nights.
package content

// Quote is an epigraph with its attribution.
type Quote struct {
	Text   string
	Author string
}

// Quotes are shown on the intro screen, one per night.
var Quotes = []Quote{
	{"By the pricking of my thumbs, something wicked this way comes.", "William Shakespeare, Macbeth"},
	{"Hell is empty and all the devils are here.", "William Shakespeare, The Tempest"},
	{"'Tis now the very witching time of night.", "William Shakespeare, Hamlet"},
	{"Deep into that darkness peering, long I stood there wondering, fearing.", "Edgar Allan Poe, The Raven"},
	{"All that we see or seem is but a dream within a dream.", "Edgar Allan Poe, A Dream Within a Dream"},
	{"The oldest and strongest emotion of mankind is fear.", "H. P. Lovecraft, Supernatural Horror in Literature"},
	{"Listen to them, the children of the night. What music they make!", "Bram Stoker, Dracula"},
	{"Beware; for I am fearless, and therefore powerful.", "Mary Shelley, Frankenstein"},
	{"The night has a thousand eyes, and the day but one.", "Francis William Bourdillon"},
	{"There is no den in the wide world to hide a rogue.", "Ralph Waldo Emerson, Compensation"},
}

// Ending is shown once the sun comes up.
var Ending = Quote{
	Text:   "Even the darkest night will end and the sun will rise.",
	Author: "Victor Hugo, Les Miserables",
}
