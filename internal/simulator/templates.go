package simulator

import (
	"math/rand"
	"strings"
)

// Demo content only. Sellers posts come in three sentiment buckets so the
// synthetic feed reads like a live board: offers, complaints and misc.

var positiveTemplates = []string{
	"Selling {item} in great shape\nCondition: barely used\nShips from {location}\nEscrow accepted\nPrice: {price}",
	"Batch of {item} available\nTested and working\nPhotos on request\nPrice: {price}, serious buyers only",
	"{item} for sale, one owner\nOriginal packaging included\nLocation: {location}\nPrice: {price}",
	"Clearing out my {item}\nAll functional, sold as a lot\nPickup or shipping from {location}\nPrice: {price} firm",
	"Rare find: {item}\nKept in storage, near mint\nCan meet in {location}\nPrice: {price} or best offer",
}

var negativeTemplates = []string{
	"Warning about seller \"{seller}\"\nPaid for {item}, got nothing for two weeks\nNo replies since\nAvoid",
	"Bought {item} from {seller}\n{issue}\nAsked for a refund, got blocked\nNot recommended",
	"{seller} relisting the same {item} to multiple buyers\n{issue}\nCheck feedback before paying",
	"Stay away from {seller}\n{item} arrived broken, seller says \"your problem\"\nDispute still open",
}

var neutralTemplates = []string{
	"Looking for {item}, cash or crypto\nDM with condition and asking price",
	"Trading my {item} for {item}\nLocal meetup preferred, {location}",
	"Price check: what does {item} go for these days?\nSaw listings from {price} up",
	"ISO {item} in working order\nBudget around {price}\nCan pay BTC or bank transfer",
}

var positiveReplacements = map[string][]string{
	"item":     {"GPU mining rig", "mechanical keyboards", "vintage synth modules", "network switches", "camera lenses", "retro consoles"},
	"location": {"Berlin", "Rotterdam", "Prague", "Lisbon", "Warsaw"},
	"price":    {"0.5 BTC", "0.08 BTC", "0.012 BTC", "300 EUR", "DM for price"},
}

var negativeReplacements = map[string][]string{
	"seller": {"quickdeals24", "partsbroker", "nightowl-trades", "gearflipper", "bulkseller99"},
	"item":   {"GPU bundle", "SSD lot", "phone batch", "router stack", "lens kit"},
	"issue":  {"item never shipped", "specs did not match the listing", "serials were scratched off", "half the lot was dead on arrival"},
}

var neutralReplacements = map[string][]string{
	"item":     {"DDR4 server RAM", "rackmount UPS", "thinkpad fleet", "LoRa gateways", "POS terminals"},
	"location": {"city center", "north side", "main station"},
	"price":    {"0.004 BTC", "0.02 BTC", "150 EUR"},
}

var shoutTemplates = []string{
	"New {item} drop in {place}!",
	"Looking for {item}, PM me!",
	"Anyone got {item} for sale?",
	"Fresh {item} available, DM for details!",
}

var shoutReplacements = map[string][]string{
	"item":  {"GPU rigs", "keyboard kits", "synth gear", "server pulls", "console bundles"},
	"place": {"marketplace", "services", "trade floor"},
}

var announcementTemplates = map[string][]string{
	"title": {
		"{action} {item}",
		"{item} {status} Update",
		"New {item} Guidelines",
		"Discuss {item} Trends",
	},
	"content": {
		"{action} {item}. Contact me for details.",
		"Recent {item} trends show {status}. Share your thoughts!",
		"Offering {service} for secure {item} deals. PM to join.",
		"Tips: Always verify {item} before trading.",
	},
}

var announcementReplacements = map[string][]string{
	"action":  {"New rules for", "Tips for trading", "Offering", "Discussing"},
	"item":    {"bulk hardware", "escrow services", "group buys", "import lots"},
	"status":  {"increased activity", "new methods", "high demand", "stricter rules"},
	"service": {"middleman services", "secure deals", "escrow", "verification"},
}

var commentTemplates = []string{
	"Interested, check your DMs.",
	"Can you do escrow on this?",
	"Dealt with this seller before, smooth trade.",
	"Price seems high for {item}.",
	"Still available?",
	"Vouch, got mine last week.",
}

// generateText fills {placeholder} slots with random picks.
func generateText(template string, replacements map[string][]string) string {
	text := template
	for key, values := range replacements {
		text = strings.ReplaceAll(text, "{"+key+"}", values[rand.Intn(len(values))])
	}
	return strings.TrimSpace(text)
}

// paraphrasePost derives a (title, description, price) triple from a
// template: occasional line shuffles and prefixes keep the synthetic feed
// from looking stamped out.
func paraphrasePost(template string, replacements map[string][]string) (title, description, price string) {
	text := generateText(template, replacements)
	lines := strings.Split(text, "\n")
	if rand.Float64() < 0.3 {
		rand.Shuffle(len(lines), func(i, j int) { lines[i], lines[j] = lines[j], lines[i] })
	}
	if rand.Float64() < 0.2 {
		prefixes := []string{"FOR SALE: ", "NEW DROP: ", "OFFER: "}
		lines = append([]string{prefixes[rand.Intn(len(prefixes))]}, lines...)
	}
	text = strings.Join(lines, "\n")

	title = truncate(lines[0], 100)
	description = truncate(text, 200)

	price = "DM for price"
	for _, line := range lines {
		if strings.Contains(line, "Price:") {
			price = truncate(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "Price:")), 20)
			break
		}
	}
	return title, description, price
}

// truncate bounds s to n characters without splitting a multi-byte rune.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
