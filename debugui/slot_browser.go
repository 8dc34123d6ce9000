package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/lightstrike/arena"
)

// SlotRow is one slot table entry as shown in the browser.
type SlotRow struct {
	Index      uint32
	Occupied   bool
	Generation uint64
	Next       string
	Attributes []string
}

// SlotBrowser lists every slot of the arena with its state and attributes.
type SlotBrowser struct {
	rows          []SlotRow
	version       uint64
	sortColumn    int
	sortAscending bool
	filterText    string
	occupiedOnly  bool
	rowsPerPage   int
	currentPage   int
	selected      *uint32
}

// NewSlotBrowser creates a browser showing rowsPerPage slots at a time.
func NewSlotBrowser(rowsPerPage int) *SlotBrowser {
	return &SlotBrowser{
		sortAscending: true,
		rowsPerPage:   rowsPerPage,
	}
}

func (sb *SlotBrowser) Render(a *arena.Arena) {
	if !imgui.BeginV("Slot Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	sb.refresh(a)

	imgui.InputTextWithHint("##search", "Search...", &sb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		sb.filterText = ""
	}
	imgui.SameLine()
	if imgui.Button(fmt.Sprintf("Occupied only: %v", sb.occupiedOnly)) {
		sb.occupiedOnly = !sb.occupiedOnly
		sb.currentPage = 0
	}

	filtered := filterRows(sb.rows, sb.filterText, sb.occupiedOnly)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("SlotTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Slot")
		imgui.TableSetupColumn("State")
		imgui.TableSetupColumn("Generation")
		imgui.TableSetupColumn("Attributes")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sb.sortColumn = int(spec.ColumnIndex())
			sb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortRows(sb.rows, sb.sortColumn, sb.sortAscending)
			filtered = filterRows(sb.rows, sb.filterText, sb.occupiedOnly)
			sortSpecs.SetSpecsDirty(false)
		}

		start, end := pageBounds(len(filtered), sb.currentPage, sb.rowsPerPage)
		for _, row := range filtered[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := sb.selected != nil && *sb.selected == row.Index
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.Index), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				index := row.Index
				sb.selected = &index
			}

			imgui.TableNextColumn()
			imgui.Text(row.State())

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Generation))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.Attributes, ", "))
		}

		imgui.EndTable()
	}

	if len(filtered) > sb.rowsPerPage {
		totalPages := (len(filtered) + sb.rowsPerPage - 1) / sb.rowsPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d slots)", sb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && sb.currentPage > 0 {
			sb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && sb.currentPage < totalPages-1 {
			sb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d slots", len(filtered)))
	}

	imgui.End()
}

// Selected returns the slot index picked in the table, if any.
func (sb *SlotBrowser) Selected() (uint32, bool) {
	if sb.selected == nil {
		return 0, false
	}
	return *sb.selected, true
}

// refresh rebuilds the rows after any allocation or free since the last
// frame. In-place attribute edits show up with the next rebuild.
func (sb *SlotBrowser) refresh(a *arena.Arena) {
	if sb.rows != nil && a.Version() == sb.version {
		return
	}
	sb.version = a.Version()
	sb.rows = buildRows(a)
	sortRows(sb.rows, sb.sortColumn, sb.sortAscending)
}

// State renders the slot's tagged state.
func (r SlotRow) State() string {
	if r.Occupied {
		return "occupied"
	}
	return "free -> " + r.Next
}

func buildRows(a *arena.Arena) []SlotRow {
	rows := make([]SlotRow, 0, a.Len())
	for i := 0; i < a.Len(); i++ {
		info, ok := a.Slot(uint32(i))
		if !ok {
			break
		}
		row := SlotRow{
			Index:      info.Index,
			Occupied:   info.Occupied,
			Generation: info.Generation,
			Attributes: info.Attributes,
			Next:       "end",
		}
		if info.HasNext {
			row.Next = fmt.Sprintf("%d", info.Next)
		}
		rows = append(rows, row)
	}
	return rows
}

func sortRows(rows []SlotRow, column int, ascending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !ascending {
			a, b = b, a
		}

		switch column {
		case 1:
			return a.Occupied && !b.Occupied
		case 2:
			return a.Generation < b.Generation
		case 3:
			return len(a.Attributes) < len(b.Attributes)
		default:
			return a.Index < b.Index
		}
	})
}

func filterRows(rows []SlotRow, text string, occupiedOnly bool) []SlotRow {
	if text == "" && !occupiedOnly {
		return rows
	}

	filtered := make([]SlotRow, 0, len(rows))
	needle := strings.ToLower(text)

	for _, row := range rows {
		if occupiedOnly && !row.Occupied {
			continue
		}
		if needle != "" {
			haystack := fmt.Sprintf("%d %s %s", row.Index, row.State(), strings.Join(row.Attributes, " "))
			if !strings.Contains(strings.ToLower(haystack), needle) {
				continue
			}
		}
		filtered = append(filtered, row)
	}
	return filtered
}

func pageBounds(total, page, perPage int) (int, int) {
	start := page * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return start, end
}
