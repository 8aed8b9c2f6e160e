package game

// RGB is an 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Theme names the colors both front-ends draw with. Purely cosmetic; the
// engine passes the configured theme name through untouched.
type Theme struct {
	Name string

	Background     RGB
	Grid           RGB
	SnakeHead      RGB
	SnakeBody      RGB
	FoodNormal     RGB
	FoodBonus      RGB
	FoodGolden     RGB
	Obstacle       RGB
	ObstacleMoving RGB
	PowerUp        RGB
}

var Themes = []Theme{
	{
		Name:           "classic",
		Background:     RGB{18, 24, 18},
		Grid:           RGB{28, 36, 28},
		SnakeHead:      RGB{120, 230, 100},
		SnakeBody:      RGB{70, 170, 60},
		FoodNormal:     RGB{220, 70, 60},
		FoodBonus:      RGB{230, 140, 40},
		FoodGolden:     RGB{250, 210, 60},
		Obstacle:       RGB{110, 110, 120},
		ObstacleMoving: RGB{150, 130, 160},
		PowerUp:        RGB{80, 170, 240},
	},
	{
		Name:           "neon",
		Background:     RGB{8, 6, 20},
		Grid:           RGB{20, 14, 40},
		SnakeHead:      RGB{0, 255, 200},
		SnakeBody:      RGB{0, 180, 150},
		FoodNormal:     RGB{255, 60, 160},
		FoodBonus:      RGB{255, 120, 0},
		FoodGolden:     RGB{255, 230, 0},
		Obstacle:       RGB{90, 70, 140},
		ObstacleMoving: RGB{140, 80, 200},
		PowerUp:        RGB{60, 140, 255},
	},
	{
		Name:           "mono",
		Background:     RGB{12, 12, 12},
		Grid:           RGB{24, 24, 24},
		SnakeHead:      RGB{240, 240, 240},
		SnakeBody:      RGB{170, 170, 170},
		FoodNormal:     RGB{255, 255, 255},
		FoodBonus:      RGB{220, 220, 220},
		FoodGolden:     RGB{255, 255, 255},
		Obstacle:       RGB{90, 90, 90},
		ObstacleMoving: RGB{120, 120, 120},
		PowerUp:        RGB{200, 200, 200},
	},
}

// ThemeByName returns the named theme, falling back to the first.
func ThemeByName(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// FoodColor maps a food kind to its theme color.
func (t Theme) FoodColor(k FoodKind) RGB {
	switch k {
	case FoodBonus:
		return t.FoodBonus
	case FoodGolden:
		return t.FoodGolden
	}
	return t.FoodNormal
}
