package plotduel

import (
	"encoding/json"
	"fmt"
	"math"
)

// ============================================================
// JSON Serialization
// ============================================================

func (c Classification) toJSON() map[string]interface{} {
	m := map[string]interface{}{"kind": c.Kind.String()}
	switch c.Kind {
	case Line:
		m["slope"] = c.line.Slope
		m["intercept"] = c.line.Intercept
	case Circle:
		m["center_x"] = c.circle.CenterX
		m["center_y"] = c.circle.CenterY
		m["radius"] = c.circle.Radius
	}
	return m
}

func (c Classification) MarshalJSON() ([]byte, error) { return json.Marshal(c.toJSON()) }

func (c *Classification) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	v, err := FromJSON(m)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// FromJSON rebuilds a Classification from its decoded JSON object.
func FromJSON(data map[string]interface{}) (Classification, error) {
	kind, _ := data["kind"].(string)
	num := func(key string) (float64, error) {
		f, ok := data[key].(float64)
		if !ok {
			return 0, fmt.Errorf("%s: missing or non-numeric field %q", kind, key)
		}
		return f, nil
	}
	switch kind {
	case "line":
		a, err := num("slope")
		if err != nil {
			return Classification{}, err
		}
		b, err := num("intercept")
		if err != nil {
			return Classification{}, err
		}
		return LineOf(a, b), nil
	case "circle":
		h, err := num("center_x")
		if err != nil {
			return Classification{}, err
		}
		k, err := num("center_y")
		if err != nil {
			return Classification{}, err
		}
		r, err := num("radius")
		if err != nil {
			return Classification{}, err
		}
		if r < 0 || math.IsNaN(r) {
			return Classification{}, fmt.Errorf("circle: radius must be non-negative, got %v", r)
		}
		return CircleOf(h, k, r), nil
	case "unrecognized":
		return Classification{}, nil
	}
	return Classification{}, fmt.Errorf("unknown classification kind: %q", kind)
}

// ============================================================
// MCP Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func HandleToolCall(req ToolRequest) ToolResponse {
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	getPoints := func(key string) ([]Point, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("param %s must be array", key)
		}
		points := make([]Point, len(raw))
		for i, r := range raw {
			m, ok := r.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("param %s[%d] must be point object", key, i)
			}
			x, okx := m["x"].(float64)
			y, oky := m["y"].(float64)
			if !okx || !oky {
				return nil, fmt.Errorf("param %s[%d] needs numeric x and y", key, i)
			}
			p := Pt(x, y)
			if a, present := m["active"]; present {
				b, ok := a.(bool)
				if !ok {
					return nil, fmt.Errorf("param %s[%d].active must be boolean", key, i)
				}
				p.Active = b
			}
			points[i] = p
		}
		return points, nil
	}

	switch req.Tool {
	case "classify":
		eq, err := getString("equation")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		c := Parse(eq)
		return ToolResponse{Result: c.toJSON(), String: c.String(), LaTeX: c.LaTeX()}

	case "score":
		eq, err := getString("equation")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		points, err := getPoints("points")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		c, res := ScoreText(eq, points)
		return ToolResponse{
			Result: map[string]interface{}{
				"classification": c.toJSON(),
				"points":         res.Points,
				"captured":       res.Captured,
				"awarded":        res.Awarded,
			},
			String: c.String() + ": " + res.String(),
			LaTeX:  c.LaTeX(),
		}

	case "tolerance":
		return ToolResponse{Result: Tolerance, String: formatNum(Tolerance)}

	case "mcp_spec":
		return ToolResponse{Result: MCPToolSpec()}
	}
	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// ============================================================
// MCP spec
// ============================================================

func MCPToolSpec() string {
	tools := []map[string]interface{}{
		ts("classify", "Classify an equation as a line (y = ax + b), a circle ((x-h)^2+(y-k)^2=r^2) or unrecognized", []string{"equation"}, map[string]string{"equation": "string"}),
		ts("score", "Capture every active point on the equation's curve. points=[{x,y,active}]; lines award 1 per capture, circles 2", []string{"equation", "points"}, map[string]string{"equation": "string", "points": "array"}),
		ts("tolerance", "Return the absolute tolerance used when testing points against a curve", []string{}, map[string]string{}),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
