package certificate

// Kind selects what an Instruction draws.
type Kind int

const (
	KindFont      Kind = iota // Family, Style, Size
	KindTextColor             // Color
	KindPosition              // X, Y
	KindImage                 // Path, X, Y, Width, Flow
	KindCell                  // Width, Height, Text, Align
	KindMultiCell             // Width, Height, Text, Align
	KindLineBreak             // Height
)

// Instruction is one drawing step. Only the fields listed for its Kind are read.
type Instruction struct {
	Kind   Kind
	Text   string
	Align  string // "L", "C", "R", "J"
	Family string
	Style  string // "", "B"
	Size   float64
	Color  [3]int
	Path   string // relative to the assets directory
	X, Y   float64
	Width  float64
	Height float64
	Flow   bool // place the image at the current y and move below it
}

// Document is the ordered instruction list for one certificate plus its download name.
type Document struct {
	Instructions []Instruction
	Filename     string
}

type builder struct {
	ins []Instruction
}

func (b *builder) font(style string, size float64) {
	b.ins = append(b.ins, Instruction{Kind: KindFont, Family: "Helvetica", Style: style, Size: size})
}

func (b *builder) color(r, g, bl int) {
	b.ins = append(b.ins, Instruction{Kind: KindTextColor, Color: [3]int{r, g, bl}})
}

func (b *builder) position(x, y float64) {
	b.ins = append(b.ins, Instruction{Kind: KindPosition, X: x, Y: y})
}

func (b *builder) image(path string, x, y, w float64, flow bool) {
	b.ins = append(b.ins, Instruction{Kind: KindImage, Path: path, X: x, Y: y, Width: w, Flow: flow})
}

func (b *builder) cell(h float64, text, align string) {
	b.ins = append(b.ins, Instruction{Kind: KindCell, Height: h, Text: text, Align: align})
}

func (b *builder) multi(w, h float64, text, align string) {
	b.ins = append(b.ins, Instruction{Kind: KindMultiCell, Width: w, Height: h, Text: text, Align: align})
}

func (b *builder) ln(h float64) {
	b.ins = append(b.ins, Instruction{Kind: KindLineBreak, Height: h})
}
