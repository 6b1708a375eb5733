package sprite

import "github.com/vovakirdan/tui-pet/internal/pet"

// Growth stage sprites. Every species looks the same until it is an adult.
var (
	Egg = New("egg",
		"...###...",
		"..#...#..",
		".#.....#.",
		".#.....#.",
		"#.......#",
		"#..#....#",
		"#.....#.#",
		"#.......#",
		"#..#....#",
		".#.....#.",
		"..#####..",
	)

	Baby = New("baby",
		".....#####.....",
		"...##.....##...",
		"..#.........#..",
		".#...........#.",
		".#..##...##..#.",
		"#...##...##...#",
		"#.............#",
		"#.....###.....#",
		"#......#......#",
		"#.............#",
		".#...........#.",
		".#...........#.",
		"..#.........#..",
		"...##.....##...",
		".....#####.....",
	)

	Kid = New("kid",
		"......#####......",
		"....##.....##....",
		"...#.........#...",
		"..#...##.##...#..",
		"..#...##.##...#..",
		"..#...........#..",
		"..#....###....#..",
		"...#.........#...",
		"....##.....##....",
		"..###.#####.###..",
		".#..#.......#..#.",
		"#...#.......#...#",
		"....#.......#....",
		"....#.......#....",
		".....#.....#.....",
		".....#.....#.....",
		"....##.....##....",
	)
)

// Adult species sprites.
var (
	Duck = New("duck",
		"......####..........",
		".....#....#.........",
		"....#..##..#........",
		"....#..##..###......",
		"....#.......###.....",
		".....#.....#........",
		"......#...#.........",
		".....#.....#........",
		"#...#.......#.......",
		"##.#.........#......",
		"#.#...........#.....",
		"#..............#....",
		".#.............#....",
		"..#...........#.....",
		"...##.......##......",
		".....#######........",
		"......#...#.........",
		".....##...##........",
	)

	Frog = New("frog",
		"...###.......###...",
		"..#.#.#.....#.#.#..",
		"..#.###.....###.#..",
		".#...............#.",
		"#.................#",
		"#..#...........#..#",
		"#...###########...#",
		".#...............#.",
		"..##...........##..",
		"...#.#########.#...",
		"..##.#.......#.##..",
		".#...#.......#...#.",
		"####.#########.####",
	)

	Cat = New("cat",
		".#.......#.....",
		".##.....##.....",
		".#.#####.#.....",
		"#.........#....",
		"#..#...#..#....",
		"#....#....#....",
		".#..###..#.....",
		"..#.....#......",
		"..#.....#....#.",
		".#.......#....#",
		".#.......#...#.",
		".#.......#..#..",
		".#.#...#.#.#...",
		".#.#...#.##....",
		"..##...##......",
	)
)

// ForStage returns the sprite for a pet at stage whose adult form is adult.
func ForStage(stage pet.GrowthStage, adult Sprite) Sprite {
	switch stage {
	case pet.StageEgg:
		return Egg
	case pet.StageBaby:
		return Baby
	case pet.StageKid:
		return Kid
	default:
		return adult
	}
}
