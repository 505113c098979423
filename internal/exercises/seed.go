package exercises

// seedCatalog is the built-in exercise set inserted into an empty catalog.
// Types, body parts and levels follow the usual gym dataset vocabulary so
// the goal and muscle filters have something real to chew on.
var seedCatalog = []Exercise{
	{
		Title:       "Barbell Squat",
		Description: "The classic compound lower body lift.",
		Type:        "Strength",
		BodyPart:    "Quadriceps",
		Equipment:   "Barbell",
		Level:       "Intermediate",
		Instructions: []string{
			"Set the bar on your upper back and unrack it.",
			"Sit down between your heels, knees tracking over toes.",
			"Drive back up to a full stand.",
		},
	},
	{
		Title:       "Deadlift",
		Description: "Hip hinge pull from the floor.",
		Type:        "Powerlifting",
		BodyPart:    "Hamstrings",
		Equipment:   "Barbell",
		Level:       "Intermediate",
		Instructions: []string{
			"Stand with mid-foot under the bar.",
			"Grip the bar, brace, and push the floor away.",
			"Lock out hips and knees together.",
		},
	},
	{
		Title:       "Bench Press",
		Description: "Horizontal press off the bench.",
		Type:        "Powerlifting",
		BodyPart:    "Chest",
		Equipment:   "Barbell",
		Level:       "Intermediate",
		Instructions: []string{
			"Pinch shoulder blades and plant your feet.",
			"Lower the bar to mid chest under control.",
			"Press back up to straight arms.",
		},
	},
	{
		Title:       "Barbell Row",
		Description: "Bent-over pull for the upper back.",
		Type:        "Strength",
		BodyPart:    "Middle Back",
		Equipment:   "Barbell",
		Level:       "Beginner",
	},
	{
		Title:       "Overhead Press",
		Description: "Standing press from the shoulders.",
		Type:        "Strength",
		BodyPart:    "Shoulders",
		Equipment:   "Barbell",
		Level:       "Intermediate",
	},
	{
		Title:       "Pull-Up",
		Description: "Vertical pull at bodyweight.",
		Type:        "Strength",
		BodyPart:    "Lats",
		Equipment:   "Body Only",
		Level:       "Intermediate",
	},
	{
		Title:       "Plank",
		Description: "Isometric trunk hold.",
		Type:        "Strength",
		BodyPart:    "Abdominals",
		Equipment:   "Body Only",
		Level:       "Beginner",
	},
	{
		Title:       "Running",
		Description: "Steady-state or interval road work.",
		Type:        "Cardio",
		BodyPart:    "Quadriceps",
		Equipment:   "Body Only",
		Level:       "Beginner",
	},
	{
		Title:       "Rowing Machine",
		Description: "Full body cardio on the erg.",
		Type:        "Cardio",
		BodyPart:    "Middle Back",
		Equipment:   "Machine",
		Level:       "Beginner",
	},
	{
		Title:       "Box Jump",
		Description: "Explosive jump onto a box.",
		Type:        "Plyometrics",
		BodyPart:    "Quadriceps",
		Equipment:   "Other",
		Level:       "Intermediate",
		Instructions: []string{
			"Stand a short step away from the box.",
			"Swing your arms and jump, landing soft with both feet.",
			"Step back down, never jump down.",
		},
	},
	{
		Title:       "Burpee",
		Description: "Squat thrust into a jump.",
		Type:        "Plyometrics",
		BodyPart:    "Quadriceps",
		Equipment:   "Body Only",
		Level:       "Beginner",
	},
	{
		Title:       "Standing Hamstring Stretch",
		Description: "Forward fold over straight legs.",
		Type:        "Stretching",
		BodyPart:    "Hamstrings",
		Equipment:   "Body Only",
		Level:       "Beginner",
	},
	{
		Title:       "Child's Pose",
		Description: "Resting stretch for the back and hips.",
		Type:        "Stretching",
		BodyPart:    "Lower Back",
		Equipment:   "Body Only",
		Level:       "Beginner",
	},
}
