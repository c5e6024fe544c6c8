package ratings

var basketballWeights = map[string]weights{
	"PG": {"hand_eye_coordination": 3, "awareness": 3, "creativity": 2, "agility": 2, "acceleration": 2, "finesse": 2, "composure": 1, "throw_accuracy": 2},
	"SG": {"throw_accuracy": 3, "form_technique": 3, "hand_eye_coordination": 2, "agility": 2, "acceleration": 1, "composure": 1, "jumping": 1},
	"SF": {"form_technique": 2, "throw_accuracy": 2, "agility": 2, "jumping": 2, "stamina": 1, "awareness": 1, "leg_strength": 1, "teamwork": 1},
	"PF": {"back_strength": 2, "leg_strength": 2, "jumping": 2, "reactions": 2, "balance": 1, "bravery": 1, "form_technique": 1},
	"C":  {"jumping": 3, "back_strength": 2, "leg_strength": 2, "reactions": 2, "balance": 2, "grip_strength": 1, "bravery": 1},
}

var soccerWeights = map[string]weights{
	"GK":  {"reactions": 4, "agility": 3, "jumping": 2, "composure": 2, "awareness": 2, "grip_strength": 2, "bravery": 1},
	"CB":  {"leg_strength": 2, "back_strength": 2, "jumping": 2, "awareness": 3, "bravery": 2, "reactions": 1, "composure": 1},
	"FB":  {"top_speed": 3, "acceleration": 2, "stamina": 2, "awareness": 2, "ball_control": 1, "teamwork": 1},
	"WB":  {"top_speed": 3, "stamina": 3, "acceleration": 2, "ball_control": 2, "creativity": 1, "teamwork": 1},
	"DM":  {"awareness": 3, "teamwork": 2, "stamina": 2, "bravery": 2, "technique": 1, "patience": 1},
	"CM":  {"technique": 3, "ball_control": 2, "creativity": 2, "stamina": 2, "teamwork": 2, "awareness": 1},
	"WM":  {"top_speed": 2, "ball_control": 2, "stamina": 2, "creativity": 2, "technique": 1, "acceleration": 1},
	"CAM": {"creativity": 3, "technique": 3, "ball_control": 2, "finesse": 2, "composure": 1, "deception": 1},
	"W":   {"top_speed": 3, "acceleration": 3, "ball_control": 2, "deception": 2, "finesse": 1, "agility": 1},
	"ST":  {"finesse": 3, "composure": 3, "acceleration": 2, "ball_control": 2, "leg_strength": 1, "jumping": 1, "bravery": 1},
}

var soccerAliases = map[string]string{
	"LB":  "FB",
	"RB":  "FB",
	"LWB": "WB",
	"RWB": "WB",
	"CDM": "DM",
	"LM":  "WM",
	"RM":  "WM",
	"LW":  "W",
	"RW":  "W",
	"CF":  "ST",
}

var baseballWeights = map[string]weights{
	"P":  {"arm_strength": 4, "throw_accuracy": 4, "stamina": 2, "deception": 2, "composure": 2, "patience": 1},
	"C":  {"arm_strength": 2, "reactions": 2, "awareness": 3, "leg_strength": 1, "patience": 1, "hand_eye_coordination": 2},
	"1B": {"hand_eye_coordination": 3, "back_strength": 2, "grip_strength": 2, "form_technique": 2, "reactions": 1},
	"2B": {"agility": 3, "reactions": 2, "throw_accuracy": 2, "hand_eye_coordination": 2, "acceleration": 1},
	"SS": {"agility": 3, "reactions": 3, "arm_strength": 2, "throw_accuracy": 2, "acceleration": 1, "hand_eye_coordination": 1},
	"3B": {"reactions": 3, "arm_strength": 3, "throw_accuracy": 1, "bravery": 1, "hand_eye_coordination": 2},
	"OF": {"top_speed": 2, "arm_strength": 2, "awareness": 2, "hand_eye_coordination": 2, "acceleration": 1},
	"CF": {"top_speed": 3, "acceleration": 2, "awareness": 2, "hand_eye_coordination": 2, "arm_strength": 1},
	"DH": {"hand_eye_coordination": 4, "form_technique": 3, "back_strength": 2, "grip_strength": 2, "patience": 1},
}

var baseballAliases = map[string]string{
	"SP": "P",
	"RP": "P",
	"LF": "OF",
	"RF": "OF",
}
