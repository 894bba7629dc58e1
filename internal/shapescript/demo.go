package shapescript

// Demo builds a small dungeon: two rooms joined by corridors, a well, a
// pond and a path. The commands use it when no script is given.
const Demo = `// a small dungeon
hall = border(2, 2, 14, 6, "hall")
vault = border(28, 12, 12, 7, "vault")
well = ring(48, 5, 4, "well")
pond = circle(14, 18, 3)
connect(hall, vault, "hv")
connect(vault, well, "vh")
path = line(2, 24, 44, 26)
print("pond cells: " + count(3))
print("path cells: " + len(2, 24, 44, 26))
`
