package styles

const (
	// Tree affordances
	ExpandedIcon  string = "▾"
	CollapsedIcon string = "▸"
	LeafIcon      string = " "

	// Tree guides
	BranchIcon     string = "├─"
	LastBranchIcon string = "└─"
	TreePipe       string = "│ "
	TreeSpace      string = "  "

	// Node kinds
	AssemblyIcon string = "◆"
	PartIcon     string = "◇"

	// Widget glyphs
	SwitchOnIcon  string = "●"
	SwitchOffIcon string = "○"
	DropdownIcon  string = "▾"
	SelectedMark  string = "›"

	// Status icons
	CheckIcon   string = "✓"
	ErrorIcon   string = "✗"
	WarningIcon string = "⚠"
	InfoIcon    string = "ℹ"
	SearchIcon  string = "🔍"
)
