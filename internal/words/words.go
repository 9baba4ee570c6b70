// Package words holds the embedded word lists backing the default
// dictionary policy, grouped by word length.
package words

import "strings"

var threeLetter = toSet(
	"THE", "AND", "FOR", "ARE", "BUT", "NOT", "YOU", "ALL", "CAN", "HER",
	"WAS", "ONE", "OUR", "HAD", "DAY", "GET", "USE", "MAN", "NEW", "NOW",
	"WAY", "MAY", "SAY", "SEE", "HIM", "TWO", "HOW", "ITS", "WHO", "OIL",
	"SIT", "SET", "RUN", "EAT", "FAR", "SEA", "EYE", "RED", "TOP", "ARM",
	"TOO", "OLD", "ANY", "APP", "ART", "BAD", "BAG", "BAR", "BAT", "BED",
	"BIG", "BIT", "BOX", "BOY", "BUS", "BUY", "CAR", "CAT", "COW", "CRY",
	"CUP", "CUT", "DOG", "DRY", "EAR", "EGG", "END", "FAN", "FEW", "FIT",
	"FIX", "FLY", "FOX", "FUN", "GAS", "GOT", "GUN", "GUY", "HAT", "HIT",
	"HOT", "JOB", "KEY", "KID", "LAW", "LAY", "LEG", "LET", "LIE", "LOT",
	"LOW", "MAP", "MOM", "NET", "OFF", "PAY", "PEN", "PET", "PUT", "RAT",
	"RAW", "ROW", "SAD", "SUN", "TAX", "TEA", "TEN", "TIE", "TIP", "TRY",
	"WAR", "WIN", "YES", "YET", "ZOO", "ACE", "ADD", "AGE", "AID", "AIM",
	"AIR", "ASK", "AXE", "BAN", "BEE", "BET", "BIN", "BOW", "CAB", "CAP",
	"COB", "COD", "COG", "DIG", "DIM", "DIP", "DOT", "DUE", "DUG", "ELF",
	"ERA", "EVE", "FED", "FIG", "FIN", "FOG", "FUR", "GAP", "GEL", "GEM",
	"HAM", "HEN", "HEX", "HID", "HOP", "HUB", "HUG", "HUT", "ICE", "ILL",
	"INK", "ION", "JAM", "JAR", "JAW", "JET", "JOG", "JOT", "JOY", "JUG",
	"LAB", "LAD", "LAP", "LED", "LID", "LIP", "LOG", "MAD", "MUD", "MUG",
	"NAP", "NUT", "OAK", "ODD", "ORB", "OWL", "PAD", "PAN", "PAW", "PEA",
	"PIG", "PIN", "PIT", "POD", "POT", "PUP", "RAG", "RAM", "RAN", "RAP",
	"RIB", "RID", "RIM", "RIP", "ROD", "RUB", "RUG", "RUM", "SAG", "SAP",
	"SAW", "SKI", "SKY", "SOB", "SOD", "SON", "SPA", "SPY", "TAB", "TAG",
	"TAN", "TAP", "TAR", "TON", "TOY", "TUB", "TUG", "VAN", "VAT", "VET",
	"WEB", "WET", "WIG", "ZIP", "APE", "ARC", "ARK", "AWE", "BAY", "BUG",
	"BUN", "COT", "DAD", "DAM", "DEN", "DEW", "DIE", "EEL", "ELM", "ERR",
	"FLU", "FRY", "GYM", "HAY", "HUE", "IVY", "JAB", "KEG", "MAT", "MIX",
	"MOB", "MOP", "NAG", "NOD", "NOR", "PAL", "POP", "PRO", "PUB", "PUN",
	"RAY", "ROT", "SAT", "SHE", "SHY", "SIN", "SIP", "SIR", "SIX", "TAD",
	"TIN", "TOE", "URN", "VIA", "VOW", "WAX", "WHY", "WOK", "WON", "YAK",
	"YAM", "ZAP", "ZEN",
)

var fourLetter = toSet(
	"WORD", "WHAT", "SAID", "EACH", "WILL", "MANY", "THEN", "THEM", "SOME",
	"MAKE", "LIKE", "INTO", "TIME", "VERY", "WHEN", "COME", "HERE", "JUST",
	"KNOW", "TAKE", "THAN", "ONLY", "GOOD", "ALSO", "BACK", "OVER", "WELL",
	"LONG", "WORK", "LIFE", "DOWN", "CALL", "FIND", "TELL", "HELP", "MOVE",
	"PART", "HAND", "HIGH", "YEAR", "CAME", "SHOW", "LOOK", "WANT", "DOES",
	"SEEM", "FELT", "KEEP", "LEFT", "TURN", "SEEN", "FACT", "HEAD", "WEEK",
	"CASE", "LAST", "SAME", "BOOK", "HEAR", "STOP", "SIDE", "BOTH", "FACE",
	"ONCE", "OPEN", "WALK", "TALK", "WENT", "EYES", "DOOR", "ROOM", "AWAY",
	"AREA", "BEAR", "BEAT", "BIRD", "BLUE", "BODY", "BONE", "BURN", "BUSY",
	"CAKE", "CARE", "CELL", "CITY", "CLUB", "COAT", "COLD", "COOL", "COPY",
	"COST", "CREW", "DARK", "DATA", "DEAD", "DEAL", "DEAR", "DEEP", "DESK",
	"DIET", "DRAW", "DUCK", "DUTY", "EARN", "EAST", "EASY", "EDGE", "ELSE",
	"EVEN", "EVER", "EXIT", "FAIL", "FAIR", "FALL", "FARM", "FAST", "FEAR",
	"FEEL", "FEET", "FELL", "FILE", "FILM", "FINE", "FIRE", "FISH", "FIVE",
	"FLAT", "FLOW", "FOOD", "FOOT", "FORM", "FREE", "FROM", "FULL", "FUND",
	"GAME", "GATE", "GAVE", "GIFT", "GIRL", "GIVE", "GLAD", "GOLD", "GONE",
	"GRAB", "GREW", "GRIP", "GROW", "HALL", "HANG", "HARD", "HARM", "HATE",
	"HAVE", "HEAT", "HELD", "HIDE", "HILL", "HIRE", "HOLD", "HOLE", "HOLY",
	"HOME", "HOPE", "HOUR", "HUGE", "HUNG", "HUNT", "HURT", "IDEA", "INCH",
	"IRON", "ITEM", "JOIN", "JOKE", "JUMP", "JURY", "KICK", "KIND", "KING",
	"KNEE", "KNEW", "LACK", "LADY", "LAID", "LAKE", "LAND", "LATE", "LEAD",
	"LEAN", "LENS", "LESS", "LIFT", "LINE", "LINK", "LION", "LIST", "LIVE",
	"LOAN", "LOCK", "LORD", "LOSE", "LOSS", "LOST", "LOTS", "LOUD", "LOVE",
	"LUCK", "MADE", "MAIL", "MAIN", "MALE", "MALL", "MARK", "MASS", "MATE",
	"MATH", "MEAL", "MEAN", "MEAT", "MEET", "MELT", "MENU", "MESS", "MICE",
	"MILE", "MILK", "MIND", "MINE", "MISS", "MODE", "MOOD", "MOON", "MORE",
	"MOST", "MUCH", "MUST", "NAME", "NAVY", "NEAR", "NECK", "NEED", "NEWS",
	"NICE", "NOON", "NOTE", "NUTS", "ONTO", "ORAL", "PACE", "PACK", "PAGE",
	"PAID", "PAIN", "PAIR", "PALM", "PARK", "PASS", "PAST", "PATH", "PEAK",
	"PICK", "PILE", "PINK", "PIPE", "PLAN", "PLAY", "PLOT", "POEM", "POET",
	"POLL", "POOL", "POOR", "PORT", "POST", "PULL", "PURE", "PUSH", "QUIT",
	"RACE", "RAIN", "RANK", "RARE", "RATE", "READ", "REAL", "REAR", "RELY",
	"RENT", "REST", "RICH", "RIDE", "RING", "RISE", "RISK", "ROAD", "ROCK",
	"ROLE", "ROLL", "ROOF", "ROOT", "ROPE", "ROSE", "RULE", "RUSH", "SAFE",
	"SAIL", "SALE", "SALT", "SAND", "SAVE", "SEAT", "SEED", "SEEK", "SELL",
	"SEND", "SENT", "SHIP", "SHOE", "SHOP", "SHOT", "SICK", "SIGN", "SING",
	"SINK", "SITE", "SIZE", "SKIN", "SLIP", "SLOW", "SNAP", "SNOW", "SOAP",
	"SOFT", "SOIL", "SOLD", "SONG", "SOON", "SORT", "SOUL", "SOUP", "SPIN",
	"SPOT", "STAR", "STAY", "STEP", "SUCH", "SUIT", "SURE", "SWIM", "TALL",
	"TANK", "TAPE", "TASK", "TEAM", "TEAR", "TEST", "TEXT", "THIS", "TIDE",
	"TINY", "TOLD", "TONE", "TOOK", "TOOL", "TOUR", "TOWN", "TREE", "TRIP",
	"TRUE", "TUNE", "TYPE", "UNIT", "UPON", "USED", "USER", "VARY", "VAST",
	"VIEW", "VOTE", "WAGE", "WAIT", "WAKE", "WALL", "WARM", "WASH", "WAVE",
	"WEAR", "WEST", "WIDE", "WIFE", "WILD", "WIND", "WINE", "WING", "WIRE",
	"WISE", "WISH", "WOOD", "WORE", "YARD", "ZERO", "ZONE", "CATS", "DOGS",
	"OGRE", "GRID", "CORD", "DRAG",
)

var fiveLetter = toSet(
	"ABOUT", "ABOVE", "ACTOR", "ADMIT", "ADOPT", "AFTER", "AGAIN", "AGENT",
	"AGREE", "AHEAD", "ALARM", "ALBUM", "ALERT", "ALIKE", "ALIVE", "ALLOW",
	"ALONE", "ALONG", "ALTER", "ANGER", "ANGLE", "ANGRY", "APART", "APPLE",
	"APPLY", "ARENA", "ARGUE", "ARISE", "ASIDE", "ASSET", "AVOID", "AWARD",
	"AWARE", "BADLY", "BASIC", "BEACH", "BEGAN", "BEGIN", "BEING", "BELOW",
	"BENCH", "BIRTH", "BLACK", "BLAME", "BLANK", "BLIND", "BLOCK", "BLOOD",
	"BOARD", "BOOST", "BOUND", "BRAIN", "BRAND", "BRAVE", "BREAD", "BREAK",
	"BRICK", "BRIEF", "BRING", "BROAD", "BROKE", "BROWN", "BUILD", "BUNCH",
	"BURST", "BUYER", "CABIN", "CABLE", "CARRY", "CATCH", "CAUSE", "CHAIN",
	"CHAIR", "CHARM", "CHASE", "CHEAP", "CHECK", "CHEST", "CHIEF", "CHILD",
	"CHOSE", "CIVIL", "CLAIM", "CLASS", "CLEAN", "CLEAR", "CLICK", "CLIMB",
	"CLOCK", "CLOSE", "CLOUD", "COACH", "COAST", "COULD", "COUNT", "COURT",
	"COVER", "CRAFT", "CRASH", "CRAZY", "CREAM", "CRIME", "CROSS", "CROWD",
	"CROWN", "CURVE", "CYCLE", "DAILY", "DANCE", "DEATH", "DELAY", "DEPTH",
	"DIRTY", "DOUBT", "DOZEN", "DRAFT", "DRAMA", "DREAM", "DRESS", "DRINK",
	"DRIVE", "EAGER", "EARLY", "EARTH", "EIGHT", "ELECT", "EMPTY", "ENEMY",
	"ENJOY", "ENTER", "ENTRY", "EQUAL", "ERROR", "EVENT", "EVERY", "EXACT",
	"EXIST", "EXTRA", "FAITH", "FALSE", "FAULT", "FENCE", "FIELD", "FIFTH",
	"FIGHT", "FINAL", "FIRST", "FLAME", "FLASH", "FLEET", "FLOOR", "FOCUS",
	"FORCE", "FORTH", "FORTY", "FORUM", "FOUND", "FRAME", "FRESH", "FRONT",
	"FRUIT", "FUNNY", "GIANT", "GIVEN", "GLASS", "GLOBE", "GOING", "GRACE",
	"GRADE", "GRAND", "GRANT", "GRASS", "GREAT", "GREEN", "GROUP", "GUARD",
	"GUESS", "GUEST", "GUIDE", "HAPPY", "HEART", "HEAVY", "HORSE", "HOTEL",
	"HOUSE", "HUMAN", "IDEAL", "IMAGE", "INDEX", "INNER", "INPUT", "ISSUE",
	"JOINT", "JUDGE", "KNIFE", "KNOCK", "KNOWN", "LABEL", "LARGE", "LASER",
	"LATER", "LAUGH", "LAYER", "LEARN", "LEAST", "LEAVE", "LEGAL", "LEVEL",
	"LIGHT", "LIMIT", "LOCAL", "LOGIC", "LOOSE", "LUCKY", "LUNCH", "MAGIC",
	"MAJOR", "MAKER", "MARCH", "MATCH", "MAYBE", "MAYOR", "MEDIA", "METAL",
	"MIGHT", "MINOR", "MIXED", "MODEL", "MONEY", "MONTH", "MORAL", "MOTOR",
	"MOUNT", "MOUSE", "MOUTH", "MOVIE", "MUSIC", "NEVER", "NIGHT", "NOISE",
	"NORTH", "NOVEL", "NURSE", "OCCUR", "OCEAN", "OFFER", "OFTEN", "ORDER",
	"OTHER", "OUGHT", "OUTER", "OWNER", "PAINT", "PANEL", "PAPER", "PARTY",
	"PEACE", "PHASE", "PHONE", "PHOTO", "PIECE", "PILOT", "PITCH", "PLACE",
	"PLAIN", "PLANE", "PLANT", "PLATE", "POINT", "POUND", "POWER", "PRESS",
	"PRICE", "PRIDE", "PRIME", "PRINT", "PRIOR", "PRIZE", "PROOF", "PROUD",
	"PROVE", "QUEEN", "QUICK", "QUIET", "QUITE", "RADIO", "RAISE", "RANGE",
	"RAPID", "RATIO", "REACH", "READY", "REFER", "RIGHT", "RIVAL", "RIVER",
	"ROUGH", "ROUND", "ROUTE", "ROYAL", "RURAL", "SCALE", "SCENE", "SCOPE",
	"SCORE", "SENSE", "SERVE", "SEVEN", "SHALL", "SHAPE", "SHARE", "SHARP",
	"SHEET", "SHELF", "SHELL", "SHIFT", "SHIRT", "SHOCK", "SHOOT", "SHORT",
	"SIGHT", "SINCE", "SKILL", "SLEEP", "SLIDE", "SMALL", "SMART", "SMILE",
	"SMOKE", "SOLID", "SOLVE", "SORRY", "SOUND", "SOUTH", "SPACE", "SPARE",
	"SPEAK", "SPEED", "SPEND", "SPLIT", "SPORT", "STAFF", "STAGE", "STAND",
	"START", "STATE", "STEAM", "STEEL", "STICK", "STILL", "STOCK", "STONE",
	"STOOD", "STORE", "STORM", "STORY", "STRIP", "STUCK", "STUDY", "STUFF",
	"STYLE", "SUGAR", "SUITE", "SUPER", "SWEET", "TABLE", "TAKEN", "TASTE",
	"TEACH", "THANK", "THEME", "THERE", "THICK", "THING", "THINK", "THIRD",
	"THOSE", "THREE", "THREW", "THROW", "TIGHT", "TIRED", "TITLE", "TODAY",
	"TOPIC", "TOTAL", "TOUCH", "TOUGH", "TOWER", "TRACK", "TRADE", "TRAIN",
	"TREAT", "TREND", "TRIAL", "TRIED", "TRUCK", "TRULY", "TRUST", "TRUTH",
	"TWICE", "UNDER", "UNION", "UNITE", "UNTIL", "UPPER", "UPSET", "URBAN",
	"USAGE", "USUAL", "VALID", "VALUE", "VIDEO", "VISIT", "VITAL", "VOICE",
	"WASTE", "WATCH", "WATER", "WHEEL", "WHERE", "WHICH", "WHILE", "WHITE",
	"WHOLE", "WHOSE", "WOMAN", "WORLD", "WORRY", "WORSE", "WORST", "WORTH",
	"WOULD", "WOUND", "WRITE", "WRONG", "WROTE", "YOUNG", "YOUTH",
)

var sixLetter = toSet(
	"ACCEPT", "ACCESS", "ACROSS", "ACTION", "ACTIVE", "ACTUAL", "ADVICE",
	"ADVISE", "AFFECT", "AFFORD", "AFRAID", "AGENCY", "AGENDA", "ALMOST",
	"ALWAYS", "AMOUNT", "ANIMAL", "ANNUAL", "ANSWER", "ANYONE", "ANYWAY",
	"APPEAL", "APPEAR", "AROUND", "ARRIVE", "ARTIST", "ASPECT", "ASSIGN",
	"ASSIST", "ASSUME", "ATTACK", "ATTEND", "AUGUST", "AUTHOR", "BATTLE",
	"BEAUTY", "BECAME", "BECOME", "BEFORE", "BEHIND", "BELIEF", "BELONG",
	"BERLIN", "BETTER", "BEYOND", "BORDER", "BOTTLE", "BOTTOM", "BOUGHT",
	"BRANCH", "BREATH", "BRIDGE", "BRIGHT", "BROKEN", "BUDGET", "BURDEN",
	"BUREAU", "BUTTON", "CAMERA", "CANCER", "CANNOT", "CARBON", "CAREER",
	"CASTLE", "CASUAL", "CAUGHT", "CENTER", "CENTRE", "CHANCE", "CHANGE",
	"CHARGE", "CHOICE", "CHOOSE", "CHOSEN", "CHURCH", "CIRCLE", "CLIENT",
	"CLOSED", "CLOSER", "COFFEE", "COLUMN", "COMBAT", "COMING", "COMMIT",
	"COMMON", "COMPLY", "COPPER", "CORNER", "COSTLY", "COUNTY", "COUPLE",
	"COURSE", "COVERS", "CREATE", "CREDIT", "CRISIS", "CUSTOM", "DAMAGE",
	"DANGER", "DEALER", "DEBATE", "DECADE", "DECIDE", "DEFEAT", "DEFEND",
	"DEFINE", "DEGREE", "DEMAND", "DEPEND", "DEPUTY", "DESERT", "DESIGN",
	"DESIRE", "DETAIL", "DETECT", "DEVICE", "DIFFER", "DINNER", "DIRECT",
	"DOCTOR", "DOLLAR", "DOMAIN", "DOUBLE", "DRIVEN", "DRIVER", "DURING",
	"EASILY", "EATING", "EDITOR", "EFFECT", "EFFORT", "EIGHTH", "EITHER",
	"ELEVEN", "EMERGE", "EMPIRE", "EMPLOY", "ENABLE", "ENDING", "ENERGY",
	"ENGAGE", "ENGINE", "ENOUGH", "ENSURE", "ENTIRE", "ENTITY", "EQUITY",
	"ESCAPE", "ESTATE", "ETHNIC", "EXCEED", "EXCEPT", "EXCESS", "EXPAND",
	"EXPECT", "EXPERT", "EXPORT", "EXTEND", "EXTENT", "FABRIC", "FACING",
	"FACTOR", "FAILED", "FAIRLY", "FALLEN", "FAMILY", "FAMOUS", "FATHER",
	"FELLOW", "FIGURE", "FILING", "FINGER", "FINISH", "FISCAL", "FLIGHT",
	"FLYING", "FOLLOW", "FORCED", "FOREST", "FORGET", "FORMAL", "FORMAT",
	"FORMER", "FOSTER", "FOUGHT", "FOURTH", "FRENCH", "FRIEND", "FUTURE",
	"GARDEN", "GATHER", "GENDER", "GERMAN", "GLOBAL", "GOLDEN", "GROUND",
	"GROWTH", "GUILTY", "HANDED", "HANDLE", "HAPPEN", "HARDLY", "HEADED",
	"HEALTH", "HEIGHT", "HIDDEN", "HOLDER", "HONEST", "IMPACT", "IMPORT",
	"INCOME", "INDEED", "INJURY", "INSIDE", "INTEND", "INTENT", "INVEST",
	"ISLAND", "ITSELF", "JERSEY", "JOSEPH", "JUNIOR", "KILLED", "LABOUR",
	"LATEST", "LATTER", "LAUNCH", "LAWYER", "LEADER", "LEAGUE", "LEAVES",
	"LEGACY", "LENGTH", "LESSON", "LETTER", "LIGHTS", "LIKELY", "LINKED",
	"LIQUID", "LISTEN", "LITTLE", "LIVING", "LOSING", "LUMBER", "MAINLY",
	"MAKING", "MANAGE", "MANNER", "MANUAL", "MARGIN", "MARINE", "MARKED",
	"MARKET", "MASTER", "MATTER", "MATURE", "MEDIUM", "MEMBER", "MEMORY",
	"MENTAL", "MERELY", "MERGER", "METHOD", "MIDDLE", "MILLER", "MINING",
	"MINUTE", "MIRROR", "MOBILE", "MODERN", "MODEST", "MODULE", "MOMENT",
	"MOSTLY", "MOTHER", "MOTION", "MOVING", "MURDER", "MUSEUM", "MUTUAL",
	"MYSELF", "NARROW", "NATION", "NATIVE", "NATURE", "NEARBY", "NEARLY",
	"NIGHTS", "NOBODY", "NORMAL", "NOTICE", "NOTION", "NUMBER", "OBJECT",
	"OBTAIN", "OFFICE", "OFFSET", "ONLINE", "OPTION", "ORANGE", "ORIGIN",
	"OUTPUT", "OXFORD", "PACKED", "PALACE", "PARENT", "PARTLY", "PATENT",
	"PEOPLE", "PERIOD", "PERMIT", "PERSON", "PHRASE", "PICKED", "PLANET",
	"PLAYER", "PLEASE", "PLENTY", "POCKET", "POLICE", "POLICY", "PREFER",
	"PRETTY", "PRINCE", "PRISON", "PROFIT", "PROPER", "PROVEN", "PUBLIC",
	"PURSUE", "RAISED", "RANDOM", "RARELY", "RATHER", "RATING", "READER",
	"REALLY", "REASON", "RECALL", "RECENT", "RECORD", "REDUCE", "REFORM",
	"REGARD", "REGIME", "REGION", "RELATE", "RELIEF", "REMAIN", "REMOTE",
	"REMOVE", "REPAIR", "REPEAT", "REPORT", "RESCUE", "RESORT",
	"RESULT", "RETAIL", "RETAIN", "RETURN", "REVEAL", "REVIEW", "REWARD",
	"RIDING", "RISING", "ROBUST", "RULING", "SAFETY", "SALARY", "SAMPLE",
	"SAVING", "SAYING", "SCHEME", "SCHOOL", "SCREEN", "SEARCH", "SEASON",
	"SECOND", "SECRET", "SECTOR", "SECURE", "SEEING", "SELECT", "SENIOR",
	"SERIES", "SERVER", "SETTLE", "SEVERE", "SHADOW", "SHOULD", "SIGNAL",
	"SIGNED", "SILENT", "SILVER", "SIMPLE", "SIMPLY", "SINGLE", "SISTER",
	"SLIGHT", "SMOOTH", "SOCIAL", "SODIUM", "SOLELY", "SOUGHT", "SOURCE",
	"SOVIET", "SPEECH", "SPIRIT", "SPOKEN", "SPREAD", "SPRING", "SQUARE",
	"STABLE", "STATUS", "STAYED", "STEADY", "STOLEN", "STRAIN", "STREAM",
	"STREET", "STRESS", "STRICT", "STRIKE", "STRING", "STRONG", "STRUCK",
	"STUDIO", "SUBMIT", "SUDDEN", "SUFFER", "SUMMER", "SUMMIT", "SUPPLY",
	"SURELY", "SURVEY", "SWITCH", "SYMBOL", "SYSTEM", "TAKING", "TALENT",
	"TARGET", "TAUGHT", "TEMPLE", "TENANT", "TENDER", "TENNIS", "THANKS",
	"THEORY", "THIRTY", "THOUGH", "THREAT", "THROWN", "TICKET", "TIMBER",
	"TISSUE", "TOWARD", "TRAVEL", "TREATY", "TRYING", "TWELVE", "TWENTY",
	"UNABLE", "UNIQUE", "UNITED", "UNLESS", "UNLIKE", "UPDATE", "USEFUL",
	"VALLEY", "VECTOR", "VENDOR", "VERIFY", "VERSUS", "VESSEL", "VICTIM",
	"VIEWER", "VIOLET", "VIRTUE", "VISION", "VISUAL", "VOLUME", "WAITED",
	"WALKER", "WALLET", "WANTED", "WARDEN", "WARMTH", "WEALTH", "WEAPON",
	"WEEKLY", "WEIGHT", "WHILST", "WIDELY", "WINDOW", "WINTER", "WISDOM",
	"WITHIN", "WIZARD", "WONDER", "WOODEN", "WORKER", "WORTHY", "WRITER",
	"YELLOW",
)

var byLength = map[int]map[string]struct{}{
	3: threeLetter,
	4: fourLetter,
	5: fiveLetter,
	6: sixLetter,
}

func toSet(ws ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ws))
	for _, w := range ws {
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether word is in the list for its length. Matching is
// case-insensitive.
func Contains(word string) bool {
	w := strings.ToUpper(word)
	set, ok := byLength[len(w)]
	if !ok {
		return false
	}
	_, ok = set[w]
	return ok
}

// CountByLength returns the number of known words of the given length.
func CountByLength(length int) int {
	return len(byLength[length])
}
