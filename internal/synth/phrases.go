package synth

import "github.com/f3rmion/wishcard/internal/card"

// phraseTable holds one language's form-pack phrases. Tone-keyed and
// relationship-keyed maps each carry a "default" entry.
type phraseTable struct {
	mainWish     map[string][]string // by tone
	shortMessage map[string][]string // by relationship
	caption      map[string][]string // by tone
	speech       map[string][]string // by relationship
	hashtags     map[string][]string // by tone
	personality  string              // {TRAIT} is replaced by the personality field
	memoryBridge string
	fallbackName string
	hashtagStem  string
}

const defaultKey = "default"

var english = phraseTable{
	mainWish: map[string][]string{
		"funny": {
			"Happy birthday {NAME}! You're not old, you're just vintage and extremely limited edition.",
			"{NAME}, congratulations on leveling up again. The cake candles are now a fire hazard!",
			"Happy birthday {NAME}! Age is just a number, and yours is getting impressively big.",
		},
		"emotional": {
			"Happy birthday {NAME}. Having you in my life is a gift I am thankful for every day.",
			"{NAME}, you make the world softer and kinder just by being in it. Happy birthday.",
		},
		"romantic": {
			"Happy birthday my love {NAME}. Every year with you feels like the best chapter yet.",
			"{NAME}, you are my favourite hello and my hardest goodbye. Happy birthday, darling.",
		},
		"formal": {
			"Wishing you a very happy birthday, {NAME}, and a year of success and good health.",
			"Warm birthday greetings, {NAME}. May the year ahead bring you continued success.",
		},
		defaultKey: {
			"Happy birthday {NAME}! Wishing you a day full of smiles and a year full of joy.",
			"Happy birthday {NAME}! May today be as bright and wonderful as you are.",
		},
	},
	shortMessage: map[string][]string{
		"friend": {
			"To my partner in crime, {NAME}: here's to more late nights and bad decisions!",
			"{NAME}, thanks for being the friend who always shows up. Have the best day!",
		},
		"mother": {
			"Mom, you are my first home and my forever hero. Happy birthday!",
		},
		"father": {
			"Dad, thank you for every lesson and every laugh. Happy birthday!",
		},
		"partner": {
			"{NAME}, every day with you is my favourite day. Happy birthday, love.",
		},
		"sibling": {
			"{NAME}, you were my first best friend and still my favourite rival. Happy birthday!",
		},
		"colleague": {
			"Happy birthday {NAME}! Thanks for making the workdays lighter.",
		},
		defaultKey: {
			"Happy birthday {NAME}! Have an amazing day.",
			"Sending you the warmest birthday wishes, {NAME}!",
		},
	},
	caption: map[string][]string{
		"funny":     {"Another lap around the sun and still no manual for adulting 🎂"},
		"emotional": {"Celebrating the person who makes every day better 💛"},
		"romantic":  {"Celebrating my favourite human today and always ❤️"},
		"formal":    {"Birthday wishes to a truly remarkable person."},
		defaultKey: {
			"Cake, candles and celebrating {NAME} 🎉",
			"It's {NAME}'s day and we're all just living in it 🎈",
		},
	},
	speech: map[string][]string{
		"friend": {
			"I want to raise a glass to {NAME}. Through every adventure and every disaster, you have been right there, laughing loudest. Here's to you and to many more years of friendship.",
		},
		"mother": {
			"Everything good in me started with you, Mom. Your patience, your strength and your love built this family. Today we celebrate you, the heart of our home.",
		},
		"father": {
			"Dad, you taught us how to work hard, laugh often and never give up. Today we celebrate the man who made us who we are.",
		},
		"partner": {
			"{NAME}, from our first conversation to this very moment, you have made my life fuller and brighter. Happy birthday to the love of my life.",
		},
		defaultKey: {
			"Let's all take a moment to celebrate {NAME}. Your kindness, energy and laughter light up every room. Here's to a fantastic year ahead!",
		},
	},
	hashtags: map[string][]string{
		"funny":    {"#BirthdayVibes #LevelUp #CakeTime #StillYoung"},
		"romantic": {"#BirthdayLove #MyPerson #ForeverYours"},
		"formal":   {"#HappyBirthday #BestWishes"},
		defaultKey: {"#HappyBirthday #BirthdayVibes #Celebrate", "#BirthdayMood #CakeTime #PartyTime"},
	},
	personality:  "Your {TRAIT} spirit makes every day brighter.",
	memoryBridge: "And I'll never forget this:",
	fallbackName: "friend",
	hashtagStem:  "#HappyBirthday",
}

var hinglish = phraseTable{
	mainWish: map[string][]string{
		"funny": {
			"Happy birthday {NAME}! Umar badh rahi hai par harkatein abhi bhi bachpan wali hain!",
			"{NAME}, party kab de raha hai? Cake ke bina birthday valid nahi hai!",
		},
		"emotional": {
			"Happy birthday {NAME}. Tum meri life ka sabse pyaara hissa ho, hamesha khush raho.",
		},
		"romantic": {
			"Happy birthday meri jaan {NAME}. Tumhare saath har din ek celebration hai.",
		},
		defaultKey: {
			"Happy birthday {NAME}! Tumhara saal khushiyon aur pyaar se bhara rahe.",
			"Janamdin mubarak ho {NAME}! Aaj ka din tumhari tarah hi special ho.",
		},
	},
	shortMessage: map[string][]string{
		"friend": {
			"{NAME}, tu sirf dost nahi, bhai hai apna. Happy birthday yaar!",
		},
		"mother": {
			"Mummy, aap ho toh sab hai. Happy birthday!",
		},
		"father": {
			"Papa, aapki har seekh ke liye thank you. Happy birthday!",
		},
		defaultKey: {
			"Happy birthday {NAME}! Khoob masti karo aaj.",
		},
	},
	caption: map[string][]string{
		"funny":    {"Ek saal aur bada, par akal wahi ki wahi 🎂"},
		defaultKey: {"Aaj {NAME} ka din hai, full on celebration 🎉"},
	},
	speech: map[string][]string{
		"friend": {
			"Doston, aaj hum {NAME} ke liye yahan hain. Har mushkil mein saath diya, har khushi double ki. Cheers to our yaar!",
		},
		defaultKey: {
			"Aaj hum sab {NAME} ko celebrate karne aaye hain. Tumhari smile se sab roshan ho jaata hai. Bahut saari shubhkamnayein!",
		},
	},
	hashtags: map[string][]string{
		defaultKey: {"#HappyBirthday #JanamdinMubarak #PartyTime", "#BirthdayMasti #DesiVibes"},
	},
	personality:  "Tumhara {TRAIT} nature sabka din bana deta hai.",
	memoryBridge: "Aur woh yaad hamesha rahegi:",
	fallbackName: "yaar",
	hashtagStem:  "#HappyBirthday",
}

var hindi = phraseTable{
	mainWish: map[string][]string{
		"emotional": {
			"जन्मदिन की हार्दिक शुभकामनाएं {NAME}। आप मेरे जीवन का सबसे अनमोल उपहार हैं।",
		},
		"formal": {
			"{NAME} जी, जन्मदिन की हार्दिक शुभकामनाएं। आपका आने वाला वर्ष सफलता से भरा हो।",
		},
		defaultKey: {
			"जन्मदिन मुबारक हो {NAME}! आपका हर दिन खुशियों से भरा रहे।",
			"{NAME}, जन्मदिन की ढेर सारी शुभकामनाएं! भगवान आपको हमेशा खुश रखे।",
		},
	},
	shortMessage: map[string][]string{
		"mother": {"माँ, आप मेरी दुनिया हैं। जन्मदिन मुबारक हो!"},
		"father": {"पापा, आपके आशीर्वाद से ही सब कुछ है। जन्मदिन मुबारक हो!"},
		defaultKey: {
			"{NAME}, जन्मदिन की बहुत बहुत बधाई!",
		},
	},
	caption: map[string][]string{
		defaultKey: {"आज {NAME} का खास दिन है 🎉"},
	},
	speech: map[string][]string{
		defaultKey: {
			"आज हम सब {NAME} का जन्मदिन मनाने के लिए यहाँ इकट्ठा हुए हैं। आपकी मुस्कान हम सबकी खुशी है। आपको ढेर सारी शुभकामनाएं!",
		},
	},
	hashtags: map[string][]string{
		defaultKey: {"#जन्मदिन_मुबारक #HappyBirthday"},
	},
	personality:  "आपका {TRAIT} स्वभाव सबका दिल जीत लेता है।",
	memoryBridge: "और वह याद हमेशा दिल में रहेगी:",
	fallbackName: "दोस्त",
	hashtagStem:  "#HappyBirthday",
}

var tables = map[card.Language]phraseTable{
	card.LanguageEnglish:  english,
	card.LanguageHinglish: hinglish,
	card.LanguageHindi:    hindi,
}
