package catalog

import (
	"strings"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

// Template fallback terminates at this key; it must always exist.
const (
	DefaultTemplateMood  = "joy"
	DefaultTemplateGenre = domain.GenreComedy
)

// TemplateKey builds the (mood, genre) lookup key, e.g. "joy_comedy".
func TemplateKey(mood string, g domain.Genre) string {
	return strings.ToLower(strings.TrimSpace(mood)) + "_" + strings.ToLower(string(g))
}

var storyTemplates = map[string][]string{
	"joy_comedy": {
		"INT. COFFEE SHOP - MORNING\n\nSAM (20s) spills coffee on their laptop, panicking about a presentation. A STRANGER (20s) offers help with a smile.\n\nSTRANGER\nHappens to the best of us. I'm a tech repair wizard.\n\nSAM\n(relieved)\nYou're a lifesaver!",
		"INT. TECH REPAIR SHOP - LATER\n\nThe Stranger, ALEX, works on Sam's laptop. They share stories and laugh.\n\nALEX\nYou know, disasters make the best stories later.\n\nSAM\nIf that's true, I'm writing a bestseller.",
		"INT. OFFICE BUILDING - DAY\n\nSam delivers a flawless presentation, grateful for the morning's 'disaster.' Alex watches from the audience, having been invited.\n\nSAM\n(to audience)\nSometimes the best opportunities come from the worst moments.\n\nAlex smiles knowingly from the back row.",
		"EXT. COFFEE SHOP - EVENING\n\nSam and Alex meet again at the same coffee shop, this time intentionally.\n\nALEX\nSame time tomorrow? I promise not to fix your laptop this time.\n\nSAM\n(laughing)\nDeal. But maybe bring a towel, just in case.\n\nThey clink coffee cups as the sun sets.",
	},
	"sadness_drama": {
		"INT. MAYA'S APARTMENT - NIGHT\n\nMAYA (30s) sits alone, surrounded by boxes. She finds an old photo of her grandmother. Tears fall as memories flood back.\n\nMAYA\n(whispered)\nI miss you, Grandma.",
		"INT. GRANDMOTHER'S HOUSE - FLASHBACK - DAY\n\nYoung Maya (8) bakes cookies with GRANDMOTHER (70s). The kitchen is warm and filled with laughter.\n\nGRANDMOTHER\nRemember, Maya, love lives in the little moments.\n\nYOUNG MAYA\nWhat do you mean?\n\nGRANDMOTHER\nYou'll understand when you need to.",
		"INT. MAYA'S APARTMENT - CONTINUOUS\n\nMaya finds a recipe card in Grandmother's handwriting. She starts gathering ingredients, finding comfort in the familiar routine.\n\nMAYA\n(to photo)\nI understand now. You're in every little moment.",
		"INT. MAYA'S KITCHEN - LATER\n\nMaya takes fresh cookies from the oven. The apartment smells like love. She packages some cookies and heads to the door.\n\nMAYA\n(voice-over)\nLove doesn't end. It just finds new ways to show up.",
	},
	"anger_thriller": {
		"INT. ALEX'S OFFICE - NIGHT\n\nALEX (30s) discovers incriminating documents about their company's illegal activities. Security cameras record everything.\n\nALEX\n(into phone)\nWe need to talk. Now.",
		"EXT. PARKING GARAGE - NIGHT\n\nAlex meets JORDAN (40s), a journalist. Footsteps echo ominously.\n\nJORDAN\nYou sure about this? These people don't forgive.\n\nALEX\nI can't stay silent anymore.",
		"INT. ALEX'S CAR - MOVING - NIGHT\n\nAlex notices they're being followed. Heart racing, they take evasive action through city streets.\n\nALEX\n(panicked)\nThey know. They already know!",
		"INT. NEWS STATION - DAWN\n\nAlex and Jordan prepare for a live broadcast. Despite the danger, Alex is determined.\n\nALEX\n(to camera)\nSometimes the right thing to do is also the hardest thing to do.\n\nThe red light goes on. Truth time.",
	},
	"fear_horror": {
		"INT. OLD HOUSE - NIGHT\n\nSARAH (20s) enters the inherited house. Creaking floors and shadows everywhere. Her phone has no signal.\n\nSARAH\n(nervous)\nJust pack and leave. Simple.",
		"INT. ATTIC - CONTINUOUS\n\nSarah finds old family photos. In each one, a dark figure appears in the background, getting closer in each successive photo.\n\nSARAH\n(horrified)\nThat's... that's not possible.",
		"INT. HALLWAY - NIGHT\n\nSarah tries to leave but doors slam shut. Whispers fill the air. She's trapped with whatever haunts this place.\n\nWHISPERS\n(echoing)\nStay... stay with us...",
		"INT. LIVING ROOM - DAWN\n\nSarah confronts the spirit, her fear transformed into understanding.\n\nSARAH\nI'm not afraid anymore. You're just lost, aren't you?\n\nThe house grows quiet. Sunlight streams through windows.",
	},
	"love_romance": {
		"INT. BOOKSTORE - DAY\n\nEMILY (25) reaches for the same book as DAVID (27). Their hands touch. Time seems to stop.\n\nDAVID\nGreat taste in literature.\n\nEMILY\n(blushing)\nYou can have it. I've read it three times already.",
		"EXT. PARK BENCH - SUNSET\n\nEmily and David sit together, the book between them. They share stories and dreams.\n\nDAVID\nI never believed in love at first sight.\n\nEMILY\nAnd now?\n\nDAVID\nNow I believe in love at first touch.",
		"INT. EMILY'S APARTMENT - EVENING\n\nEmily discovers David is moving across the country tomorrow. Her world crumbles.\n\nEMILY\n(tearful)\nWhy didn't you tell me?\n\nDAVID\nBecause I knew it would hurt this much.",
		"INT. AIRPORT - DAY\n\nEmily rushes through the terminal. She finds David at his gate.\n\nEMILY\n(breathless)\nDon't go. Or... take me with you.\n\nDAVID\n(amazed)\nAre you sure?\n\nEMILY\nI've never been more sure of anything.\n\nThey embrace as his flight is called.",
	},
	"fear_thriller": {
		"INT. NIGHT BUS - MOVING - NIGHT\n\nNOOR (30s) rides the last bus home. A MAN in a grey coat sits too close, humming the same three notes over and over.\n\nNOOR\n(under her breath)\nTwo more stops. Just two.",
		"EXT. BUS SHELTER - CONTINUOUS\n\nNoor steps off. The man steps off too. The street is empty and every shop window is dark.\n\nNOOR\n(into phone)\nStay on the line with me. Please.",
		"INT. NOOR'S BUILDING - STAIRWELL - NIGHT\n\nThe stairwell light flickers. Footsteps below match hers, stop when she stops.\n\nNOOR\nWho's there?\n\nSilence. Then the humming again.",
		"INT. NOOR'S APARTMENT - LATER\n\nNoor bolts the door. On her kitchen table sits a bus ticket stamped with tomorrow's date.\n\nNOOR\n(shaking)\nHe was never following me. He was waiting.",
	},
	"calm_drama": {
		"EXT. LAKESIDE CABIN - DAWN\n\nELI (60s) sets two mugs on the porch rail out of habit, then puts one back. Mist rolls over the water.\n\nELI\n(to himself)\nOld habits.",
		"INT. CABIN - KITCHEN - MORNING\n\nEli's daughter RUTH (30s) arrives unannounced with groceries and a toolbox.\n\nRUTH\nYou said the roof was fine.\n\nELI\nI said it was fine for a roof.",
		"EXT. CABIN ROOF - AFTERNOON\n\nThey work side by side in easy silence, trading nails and old jokes. A loon calls across the lake.\n\nRUTH\nMom used to say this place slows time down.\n\nELI\nIt doesn't. It just lets you notice it.",
		"EXT. LAKESIDE CABIN - DUSK\n\nTwo mugs on the porch rail. Both full. Father and daughter watch the water turn gold.\n\nELI\nStay the weekend?\n\nRUTH\n(smiling)\nI brought a bag.",
	},
	"excitement_adventure": {
		"EXT. DESERT AIRSTRIP - DAY\n\nKAI (20s) hauls a battered duffel toward a single-prop plane. Pilot ROSA (50s) squints at a hand-drawn map.\n\nROSA\nThis isn't a map. It's a doodle.\n\nKAI\nIt's a doodle that leads to a lost city.",
		"INT. PLANE - COCKPIT - FLYING - DAY\n\nTurbulence rattles everything. Kai grins through it, pressing their face to the window.\n\nKAI\nThere! The twin rocks!\n\nROSA\nHold on to something.",
		"EXT. CANYON FLOOR - DAY\n\nThe plane bounces to a stop in red dust. Carved steps climb the canyon wall, worn smooth by centuries.\n\nKAI\n(breathless)\nIt's real. It's actually real.",
		"INT. CLIFF TEMPLE - DAY\n\nTorchlight reveals a chamber of painted stars. The floor shifts. Stone grinds. A doorway begins to close.\n\nROSA\nKai, move!\n\nKai dives through as the slab slams shut behind them.",
		"EXT. TEMPLE SUMMIT - SUNSET\n\nKai and Rosa emerge on a plateau overlooking an untouched valley, a city of stone terraces below.\n\nROSA\nYou owe me fuel money.\n\nKAI\nI owe you a whole new plane.",
		"EXT. DESERT AIRSTRIP - NIGHT\n\nBack at the strip, Kai unrolls a fresh sheet of paper and starts a new doodle.\n\nKAI\nSame time next year?\n\nROSA\n(laughing)\nBring a better map.",
	},
	"surprise_adventure": {
		"INT. ATTIC - DAY\n\nPRIYA (12) finds a brass telescope wrapped in her late grandfather's scarf. A note: LOOK WEST AT MIDNIGHT.\n\nPRIYA\n(reading)\nWest at midnight...",
		"EXT. ROOFTOP - MIDNIGHT\n\nPriya aims the telescope west. Instead of stars, it shows a glowing island that isn't on any map.\n\nPRIYA\nThat's not possible. We live in Ohio.",
		"EXT. CORNFIELD - NIGHT\n\nFollowing the telescope, Priya and her brother DEV (15) push through the corn to find a rowboat waiting on dry ground.\n\nDEV\nWhy is there a boat in a field?\n\nPRIYA\nBecause Grandpa left it for us.",
		"EXT. GLOWING ISLAND - DAWN\n\nThe boat lands on shimmering sand. Their grandfather's handwriting is carved into a tree: WELCOME, EXPLORERS.\n\nPRIYA\n(grinning)\nHe knew we'd come.",
	},
	"curiosity_sci-fi": {
		"INT. RESEARCH STATION - LAB - NIGHT\n\nDR. OKAFOR (40s) watches a signal spike on her monitor. The pattern repeats every seventeen seconds.\n\nOKAFOR\nThat's not noise. That's counting.",
		"INT. RESEARCH STATION - CORRIDOR - CONTINUOUS\n\nShe wakes the station AI, MERIDIAN, its voice calm from every speaker.\n\nMERIDIAN\nThe signal originates forty meters below the ice.\n\nOKAFOR\nThere's nothing forty meters below the ice.",
		"INT. ICE TUNNEL - DAY\n\nOkafor and engineer LUIS (30s) descend. Their lamps catch a smooth black surface, perfectly flat, perfectly warm.\n\nLUIS\nIt's humming.\n\nOKAFOR\nIt's answering.",
		"INT. RESEARCH STATION - LAB - NIGHT\n\nMeridian translates the signal. It is a map of the solar system with Earth's position marked in a year not yet reached.\n\nMERIDIAN\nIt is a message from us.",
		"INT. ICE TUNNEL - LATER\n\nOkafor places her palm on the surface. Light blooms beneath her hand.\n\nOKAFOR\nThen we'd better figure out what we were trying to say.",
		"EXT. RESEARCH STATION - DAWN\n\nThe aurora ripples overhead. Okafor records a reply, seventeen seconds long.\n\nOKAFOR\n(into recorder)\nWe hear you. We're listening.",
	},
	"wonder_fantasy": {
		"EXT. VILLAGE MARKET - DAY\n\nWREN (17), a baker's apprentice, drops a loaf. It floats back into her hands. Nobody else notices.\n\nWREN\n(whispering)\nNot again.",
		"INT. BAKERY - NIGHT\n\nThe oven fire leans toward Wren like a curious cat. An OLD WOMAN watches from the doorway.\n\nOLD WOMAN\nFire only bows to its own kind, child.",
		"EXT. ANCIENT FOREST - DAWN\n\nThe Old Woman leads Wren to a tree whose bark glows with runes. They rearrange themselves to spell Wren's name.\n\nWREN\nWhat is this place?\n\nOLD WOMAN\nHome. You've just been away.",
		"EXT. FOREST CLEARING - NIGHT\n\nWren kneels before the tree and speaks her first true spell. Lanterns of light rise from the grass like fireflies.\n\nWREN\n(in awe)\nI did that.\n\nOLD WOMAN\nYou remembered that.",
	},
	"neutral_drama": {
		"INT. LAUNDROMAT - NIGHT\n\nTHEO (30s) folds the same shirt three times. Across the room, JUNE (70s) reads a paperback with the ending torn out.\n\nJUNE\nYou're either very tidy or very stuck.",
		"INT. LAUNDROMAT - CONTINUOUS\n\nThey sit side by side as the dryers turn. June explains she tears out endings so stories never finish.\n\nTHEO\nDoesn't that drive you crazy?\n\nJUNE\nIt keeps me reading.",
		"EXT. LAUNDROMAT - LATER\n\nTheo carries June's basket to her car. She hands him the torn-out pages.\n\nJUNE\nYou finish it. Then tell me if it was worth it.",
		"INT. THEO'S APARTMENT - NIGHT\n\nTheo reads the ending, laughs, and picks up his phone to call someone he hasn't called in years.\n\nTHEO\n(into phone)\nHey. It's me. Got a minute?",
	},
}

// StoryScenes returns the scenes stored under key, if any.
func StoryScenes(key string) ([]string, bool) {
	scenes, ok := storyTemplates[key]
	if !ok {
		return nil, false
	}
	return append([]string(nil), scenes...), true
}

// TemplateKeys lists every stored template key.
func TemplateKeys() []string {
	keys := make([]string, 0, len(storyTemplates))
	for k := range storyTemplates {
		keys = append(keys, k)
	}
	return keys
}

// EndingType is one flavour of alternative ending. Template takes
// {character}, {title} and {genre}.
type EndingType struct {
	Name     string
	Style    string
	Template string
}

var endingTypes = []EndingType{
	{Name: "happy", Style: "All conflicts resolve positively, characters achieve their goals", Template: "Everything {character} risked pays off. The last scene of {title} closes on a shared laugh and a door left open for whatever comes next."},
	{Name: "bittersweet", Style: "Victory comes with sacrifice, mixed emotions", Template: "{character} wins, but not without losing something they can never get back. {title} ends with a quiet goodbye that feels like a beginning."},
	{Name: "twist", Style: "Unexpected revelation changes everything we thought we knew", Template: "In the final moments {character} learns the one thing that recasts every scene before it, and the {genre} we thought we were watching turns inside out."},
	{Name: "open", Style: "Questions remain, future possibilities suggested", Template: "{character} stands at a crossroads as the screen cuts to black. {title} leaves the last choice to the audience."},
	{Name: "dark", Style: "Consequences of actions lead to sobering realizations", Template: "{character} gets what they wanted and discovers the price too late. {title} fades out on an empty room and a phone that keeps ringing."},
}

// EndingTypes returns the alternative ending flavours in presentation order.
func EndingTypes() []EndingType {
	return append([]EndingType(nil), endingTypes...)
}
