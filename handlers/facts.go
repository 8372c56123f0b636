package handlers

// facts is the pool the default text handler draws from. Any text that
// matches no keyword gets one of these instead of an echo.
var facts = []string{
	"Honey never spoils. Archaeologists have found edible honey in ancient Egyptian tombs.",
	"Octopuses have three hearts and blue blood.",
	"A day on Venus is longer than a year on Venus.",
	"Bananas are berries, but strawberries are not.",
	"The Eiffel Tower can be 15 cm taller during the summer.",
	"Wombat droppings are cube shaped.",
	"There are more possible games of chess than atoms in the observable universe.",
	"Hot water can freeze faster than cold water.",
	"A group of flamingos is called a flamboyance.",
	"Sharks existed before trees did.",
}

// randomFact returns one entry from the fact table, uniformly at random.
func (d *Dispatcher) randomFact() string {
	return facts[d.intn(len(facts))]
}
