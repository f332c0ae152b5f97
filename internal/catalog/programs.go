package catalog

import "fmt"

func ex(n int, name string, duration int, met float64, query string) Exercise {
	return Exercise{
		ID:              fmt.Sprintf("ex-%d", n),
		Name:            name,
		DurationSeconds: duration,
		MET:             met,
		VideoQuery:      query,
	}
}

func rest(n int) Exercise {
	return Exercise{
		ID:              fmt.Sprintf("rest-%d", n),
		Name:            "Rest & Prepare",
		DurationSeconds: 10,
		IsRest:          true,
		VideoQuery:      "relaxing nature",
	}
}

// programs is the fixed 21-day plan, indexed by day-1. Week 1 builds the
// habit with short low-impact sessions, week 2 raises intensity, week 3
// mixes everything. Days 7, 14 and 21 are recovery days.
var programs = []Program{
	{
		ID: "day-1-core", Day: 1, Title: "10 Min Beginner Core",
		Description: "Start your journey right with an easy, low-impact core routine.",
		Exercises: []Exercise{
			ex(1, "Crunches", 30, 3.8, "crunches exercise"),
			rest(1),
			ex(2, "Bicycle Crunches", 30, 4.5, "bicycle crunches"),
			rest(2),
			ex(3, "Plank", 30, 3.3, "plank exercise"),
			rest(3),
			ex(4, "Mountain Climbers", 30, 8.0, "mountain climbers exercise"),
		},
	},
	{
		ID: "day-2-legs", Day: 2, Title: "Leg Day Basics",
		Description: "Wake up your lower body with bodyweight squats and lunges.",
		Exercises: []Exercise{
			ex(1, "Bodyweight Squats", 40, 5.0, "bodyweight squats"),
			rest(1),
			ex(2, "Forward Lunges", 40, 4.0, "forward lunges exercise"),
			rest(2),
			ex(3, "Glute Bridges", 30, 3.5, "glute bridge exercise"),
			rest(3),
			ex(4, "Wall Sit", 30, 3.3, "wall sit exercise"),
		},
	},
	{
		ID: "day-3-cardio", Day: 3, Title: "First Cardio Push",
		Description: "Get your heart rate up with simple, equipment-free cardio.",
		Exercises: []Exercise{
			ex(1, "Jumping Jacks", 40, 8.0, "jumping jacks"),
			rest(1),
			ex(2, "High Knees", 30, 8.0, "high knees exercise"),
			rest(2),
			ex(3, "Butt Kicks", 30, 7.0, "butt kicks exercise"),
			rest(3),
			ex(4, "March in Place", 40, 3.5, "marching in place"),
		},
	},
	{
		ID: "day-4-upper", Day: 4, Title: "Upper Body Foundations",
		Description: "Build arm and shoulder strength with knee push-ups and holds.",
		Exercises: []Exercise{
			ex(1, "Knee Push-ups", 30, 3.8, "knee push ups"),
			rest(1),
			ex(2, "Arm Circles", 30, 2.8, "arm circles exercise"),
			rest(2),
			ex(3, "Plank Shoulder Taps", 30, 3.8, "plank shoulder taps"),
			rest(3),
			ex(4, "Tricep Dips", 30, 4.0, "tricep dips chair"),
		},
	},
	{
		ID: "day-5-core", Day: 5, Title: "Core Burner",
		Description: "Round two for your abs, a little longer this time.",
		Exercises: []Exercise{
			ex(1, "Crunches", 40, 3.8, "crunches exercise"),
			rest(1),
			ex(2, "Leg Raises", 30, 3.5, "leg raises exercise"),
			rest(2),
			ex(3, "Russian Twists", 30, 4.5, "russian twists"),
			rest(3),
			ex(4, "Side Plank (Left)", 20, 3.3, "side plank"),
			ex(5, "Side Plank (Right)", 20, 3.3, "side plank"),
		},
	},
	{
		ID: "day-6-fullbody", Day: 6, Title: "Full Body Mix",
		Description: "A taste of everything: legs, core and cardio in one session.",
		Exercises: []Exercise{
			ex(1, "Bodyweight Squats", 30, 5.0, "bodyweight squats"),
			rest(1),
			ex(2, "Jumping Jacks", 30, 8.0, "jumping jacks"),
			rest(2),
			ex(3, "Plank", 30, 3.3, "plank exercise"),
			rest(3),
			ex(4, "Mountain Climbers", 30, 8.0, "mountain climbers exercise"),
		},
	},
	{
		ID: "day-7-recovery", Day: 7, Title: "Active Recovery",
		Description: "Gentle stretching to finish your first week. You earned it.",
		Exercises: []Exercise{
			ex(1, "Neck & Shoulder Rolls", 40, 2.3, "neck shoulder stretch"),
			rest(1),
			ex(2, "Cat-Cow Stretch", 40, 2.3, "cat cow stretch"),
			rest(2),
			ex(3, "Child's Pose", 40, 2.0, "childs pose yoga"),
			rest(3),
			ex(4, "Hamstring Stretch", 40, 2.3, "hamstring stretch"),
		},
	},
	{
		ID: "day-8-cardio", Day: 8, Title: "Cardio Step-Up",
		Description: "Week two begins. Shorter rests, higher tempo.",
		Exercises: []Exercise{
			ex(1, "Jumping Jacks", 45, 8.0, "jumping jacks"),
			rest(1),
			ex(2, "High Knees", 40, 8.0, "high knees exercise"),
			rest(2),
			ex(3, "Skaters", 30, 7.0, "skater exercise"),
			rest(3),
			ex(4, "Fast Feet", 30, 8.0, "fast feet drill"),
		},
	},
	{
		ID: "day-9-legs", Day: 9, Title: "Stronger Legs",
		Description: "More reps, deeper squats, steadier lunges.",
		Exercises: []Exercise{
			ex(1, "Squat Pulses", 40, 5.0, "squat pulses"),
			rest(1),
			ex(2, "Reverse Lunges", 40, 4.0, "reverse lunges"),
			rest(2),
			ex(3, "Calf Raises", 30, 3.5, "calf raises"),
			rest(3),
			ex(4, "Wall Sit", 45, 3.3, "wall sit exercise"),
		},
	},
	{
		ID: "day-10-core", Day: 10, Title: "Core Endurance",
		Description: "Longer holds and slower reps for deep core strength.",
		Exercises: []Exercise{
			ex(1, "Plank", 45, 3.3, "plank exercise"),
			rest(1),
			ex(2, "Dead Bug", 40, 3.5, "dead bug exercise"),
			rest(2),
			ex(3, "Bicycle Crunches", 40, 4.5, "bicycle crunches"),
			rest(3),
			ex(4, "Hollow Hold", 30, 3.8, "hollow body hold"),
		},
	},
	{
		ID: "day-11-upper", Day: 11, Title: "Push Power",
		Description: "Full push-ups enter the program. Knees are still fine.",
		Exercises: []Exercise{
			ex(1, "Push-ups", 30, 8.0, "push ups exercise"),
			rest(1),
			ex(2, "Pike Push-ups", 30, 8.0, "pike push ups"),
			rest(2),
			ex(3, "Plank Up-Downs", 30, 8.0, "plank up downs"),
			rest(3),
			ex(4, "Superman Hold", 30, 3.0, "superman exercise"),
		},
	},
	{
		ID: "day-12-hiit", Day: 12, Title: "First HIIT",
		Description: "Short bursts, big effort. Go at your own pace.",
		Exercises: []Exercise{
			ex(1, "Burpees", 30, 8.0, "burpees exercise"),
			rest(1),
			ex(2, "Jump Squats", 30, 8.0, "jump squats"),
			rest(2),
			ex(3, "Mountain Climbers", 30, 8.0, "mountain climbers exercise"),
			rest(3),
			ex(4, "High Knees", 30, 8.0, "high knees exercise"),
		},
	},
	{
		ID: "day-13-fullbody", Day: 13, Title: "Full Body Flow",
		Description: "Move continuously between strength and cardio stations.",
		Exercises: []Exercise{
			ex(1, "Squat to Press Reach", 40, 5.0, "squat reach exercise"),
			rest(1),
			ex(2, "Push-ups", 30, 8.0, "push ups exercise"),
			rest(2),
			ex(3, "Skaters", 30, 7.0, "skater exercise"),
			rest(3),
			ex(4, "Russian Twists", 40, 4.5, "russian twists"),
		},
	},
	{
		ID: "day-14-recovery", Day: 14, Title: "Midpoint Recovery",
		Description: "Two weeks in. Stretch it out and breathe.",
		Exercises: []Exercise{
			ex(1, "Standing Forward Fold", 40, 2.3, "forward fold stretch"),
			rest(1),
			ex(2, "Hip Flexor Stretch", 40, 2.3, "hip flexor stretch"),
			rest(2),
			ex(3, "Cobra Stretch", 40, 2.3, "cobra stretch yoga"),
			rest(3),
			ex(4, "Deep Breathing", 60, 1.3, "breathing meditation"),
		},
	},
	{
		ID: "day-15-cardio", Day: 15, Title: "Cardio Peak",
		Description: "Final week. Your longest cardio session yet.",
		Exercises: []Exercise{
			ex(1, "Jumping Jacks", 50, 8.0, "jumping jacks"),
			rest(1),
			ex(2, "Burpees", 30, 8.0, "burpees exercise"),
			rest(2),
			ex(3, "High Knees", 40, 8.0, "high knees exercise"),
			rest(3),
			ex(4, "Fast Feet", 40, 8.0, "fast feet drill"),
			rest(4),
			ex(5, "Skaters", 30, 7.0, "skater exercise"),
		},
	},
	{
		ID: "day-16-legs", Day: 16, Title: "Leg Finisher",
		Description: "Everything your legs have learned, back to back.",
		Exercises: []Exercise{
			ex(1, "Jump Squats", 30, 8.0, "jump squats"),
			rest(1),
			ex(2, "Walking Lunges", 40, 4.0, "walking lunges"),
			rest(2),
			ex(3, "Squat Pulses", 40, 5.0, "squat pulses"),
			rest(3),
			ex(4, "Single-Leg Glute Bridge", 40, 3.8, "single leg glute bridge"),
		},
	},
	{
		ID: "day-17-core", Day: 17, Title: "Core Mastery",
		Description: "The hardest core day in the plan. Slow and controlled wins.",
		Exercises: []Exercise{
			ex(1, "Plank", 60, 3.3, "plank exercise"),
			rest(1),
			ex(2, "V-Ups", 30, 4.5, "v ups exercise"),
			rest(2),
			ex(3, "Bicycle Crunches", 45, 4.5, "bicycle crunches"),
			rest(3),
			ex(4, "Side Plank (Left)", 30, 3.3, "side plank"),
			ex(5, "Side Plank (Right)", 30, 3.3, "side plank"),
		},
	},
	{
		ID: "day-18-upper", Day: 18, Title: "Upper Body Peak",
		Description: "Max effort push day. Drop to knees whenever you need.",
		Exercises: []Exercise{
			ex(1, "Push-ups", 40, 8.0, "push ups exercise"),
			rest(1),
			ex(2, "Diamond Push-ups", 30, 8.0, "diamond push ups"),
			rest(2),
			ex(3, "Plank Shoulder Taps", 40, 3.8, "plank shoulder taps"),
			rest(3),
			ex(4, "Tricep Dips", 40, 4.0, "tricep dips chair"),
		},
	},
	{
		ID: "day-19-hiit", Day: 19, Title: "HIIT Finale",
		Description: "Your highest-intensity session of the whole program.",
		Exercises: []Exercise{
			ex(1, "Burpees", 40, 8.0, "burpees exercise"),
			rest(1),
			ex(2, "Jump Squats", 40, 8.0, "jump squats"),
			rest(2),
			ex(3, "Mountain Climbers", 40, 8.0, "mountain climbers exercise"),
			rest(3),
			ex(4, "Jumping Jacks", 40, 8.0, "jumping jacks"),
			rest(4),
			ex(5, "High Knees", 30, 8.0, "high knees exercise"),
		},
	},
	{
		ID: "day-20-fullbody", Day: 20, Title: "The Gauntlet",
		Description: "One last full-body circuit before the finish line.",
		Exercises: []Exercise{
			ex(1, "Squat to Press Reach", 40, 5.0, "squat reach exercise"),
			rest(1),
			ex(2, "Push-ups", 40, 8.0, "push ups exercise"),
			rest(2),
			ex(3, "Burpees", 30, 8.0, "burpees exercise"),
			rest(3),
			ex(4, "Plank", 45, 3.3, "plank exercise"),
			rest(4),
			ex(5, "Russian Twists", 40, 4.5, "russian twists"),
		},
	},
	{
		ID: "day-21-victory", Day: 21, Title: "Victory Lap",
		Description: "A gentle celebration session. 21 days — Pipi is proud of you.",
		Exercises: []Exercise{
			ex(1, "March in Place", 60, 3.5, "marching in place"),
			rest(1),
			ex(2, "Gentle Squats", 40, 3.5, "bodyweight squats slow"),
			rest(2),
			ex(3, "Full Body Stretch", 60, 2.3, "full body stretch"),
			rest(3),
			ex(4, "Deep Breathing", 60, 1.3, "breathing meditation"),
		},
	},
}
