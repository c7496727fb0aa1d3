package state

// Row is one line of the color settings list.
type Row struct {
	Label string
	Key   ColorKey
	// Alias rows share their color entry with an earlier row. They are never
	// shown and the cursor never stops on them.
	Alias bool
}

// Rows is the ordered list of editable elements. Home and away team names
// are drawn in one color, so the away row aliases team_name.
var Rows = []Row{
	{Label: "比赛名称", Key: MatchNameColor},
	{Label: "主队名称", Key: TeamNameColor},
	{Label: "客队名称", Key: TeamNameColor, Alias: true},
	{Label: "主队分数", Key: HomeScoreColor},
	{Label: "客队分数", Key: AwayScoreColor},
}

// aliasRow is the only aliased position in Rows.
const aliasRow = 2

// Cursor is the settings selection: a row in Rows and an RGB component.
type Cursor struct {
	Element   int
	Component int
}

func (c *Cursor) Up() {
	c.Element = wrap(c.Element-1, len(Rows))
	if c.Element == aliasRow {
		c.Element = aliasRow - 1
	}
}

func (c *Cursor) Down() {
	c.Element = wrap(c.Element+1, len(Rows))
	if c.Element == aliasRow {
		c.Element = aliasRow + 1
	}
}

func (c *Cursor) Left() {
	c.Component = wrap(c.Component-1, ComponentCount)
}

func (c *Cursor) Right() {
	c.Component = wrap(c.Component+1, ComponentCount)
}

// Row returns the selected row.
func (c Cursor) Row() Row {
	return Rows[wrap(c.Element, len(Rows))]
}

// DisplayRows returns the rows shown on the settings screen together with
// their index in Rows.
func DisplayRows() (rows []Row, elements []int) {
	for i, row := range Rows {
		if row.Alias {
			continue
		}
		rows = append(rows, row)
		elements = append(elements, i)
	}
	return rows, elements
}

func wrap(value, n int) int {
	value %= n
	if value < 0 {
		value += n
	}
	return value
}
