// render.go — Zone compositor. Lays the request's fields out top to bottom:
// title, variety, optional sow range, optional notes, optional date stamp.
package label

import "fmt"

// Render composes req onto c using fonts, mutating the canvas in place.
//
// Title and variety advance a shared running cursor by lineSpacing per line.
// The sow range is a single unwrapped line at the cursor. Notes do not
// continue the cursor: they are placed from their own start offset with the
// tighter notesLineHeight step, matching the layout this tool has always
// produced. The date stamp is pinned near the bottom edge regardless of the
// zones above it; very long notes may overlap it.
func Render(req Request, fonts FontSet, c *Canvas) error {
	titleFace, err := fonts.face(RoleTitle)
	if err != nil {
		return err
	}
	bodyFace, err := fonts.face(RoleBody)
	if err != nil {
		return err
	}

	titleInk := inkBlack
	if req.UseRed {
		titleInk = inkRed
	}

	y := paddingTop
	for _, line := range Wrap(req.Name, titleFace, wrapWidth) {
		c.DrawText(paddingLeft, y, line, RoleTitle, titleFace, titleInk)
		y += lineSpacing
	}

	for _, line := range Wrap(req.Variety, bodyFace, wrapWidth) {
		c.DrawText(paddingLeft, y, line, RoleBody, bodyFace, inkBlack)
		y += lineSpacing
	}

	notesY := y
	if req.SowStartMonth != "" || req.SowEndMonth != "" {
		sowFace, err := fonts.face(RoleSowLabel)
		if err != nil {
			return err
		}
		c.DrawText(paddingLeft, y, sowLine(req), RoleSowLabel, sowFace, inkBlack)
		notesY = y + lineSpacing + sowNotesGap
	}

	if req.Notes != "" {
		notesFace, err := fonts.face(RoleNotes)
		if err != nil {
			return err
		}
		for i, line := range Wrap(req.Notes, notesFace, wrapWidth) {
			c.DrawText(paddingLeft, notesY+i*notesLineHeight, line, RoleNotes, notesFace, inkBlack)
		}
	}

	if req.Month != "" && req.Year != 0 {
		smallFace, err := fonts.face(RoleSmall)
		if err != nil {
			return err
		}
		date := fmt.Sprintf("%s-%d", req.Month, req.Year)
		c.DrawText(paddingLeft, dateTop, date, RoleSmall, smallFace, inkBlack)
	}

	return nil
}

// sowLine formats the sowing window. It is never wrapped.
func sowLine(req Request) string {
	switch {
	case req.SowStartMonth != "" && req.SowEndMonth != "":
		return fmt.Sprintf("Sow: %s — %s", req.SowStartMonth, req.SowEndMonth)
	case req.SowStartMonth != "":
		return fmt.Sprintf("Sow: %s", req.SowStartMonth)
	default:
		return fmt.Sprintf("Sow End: %s", req.SowEndMonth)
	}
}
