package transforms

var transforms []*TransformDefinition

func SetupClient() {
	// Seventh Avenue express and locals
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "1",
		},
		Data: map[string]interface{}{
			"Colour": "#EE352E",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "2",
		},
		Data: map[string]interface{}{
			"Colour": "#EE352E",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "3",
		},
		Data: map[string]interface{}{
			"Colour": "#EE352E",
		},
	})

	// Lexington Avenue
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "4",
		},
		Data: map[string]interface{}{
			"Colour": "#00933C",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "5",
		},
		Data: map[string]interface{}{
			"Colour": "#00933C",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "6",
		},
		Data: map[string]interface{}{
			"Colour": "#00933C",
		},
	})

	// Flushing
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "7",
		},
		Data: map[string]interface{}{
			"Colour": "#B933AD",
		},
	})

	// Eighth Avenue
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "A",
		},
		Data: map[string]interface{}{
			"Colour": "#0039A6",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "C",
		},
		Data: map[string]interface{}{
			"Colour": "#0039A6",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "E",
		},
		Data: map[string]interface{}{
			"Colour": "#0039A6",
		},
	})

	// Sixth Avenue
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "B",
		},
		Data: map[string]interface{}{
			"Colour": "#FF6319",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "D",
		},
		Data: map[string]interface{}{
			"Colour": "#FF6319",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "F",
		},
		Data: map[string]interface{}{
			"Colour": "#FF6319",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "M",
		},
		Data: map[string]interface{}{
			"Colour": "#FF6319",
		},
	})

	// Crosstown
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "G",
		},
		Data: map[string]interface{}{
			"Colour": "#6CBE45",
		},
	})

	// Nassau Street
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "J",
		},
		Data: map[string]interface{}{
			"Colour": "#996633",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "Z",
		},
		Data: map[string]interface{}{
			"Colour": "#996633",
		},
	})

	// Canarsie
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "L",
		},
		Data: map[string]interface{}{
			"Colour": "#A7A9AC",
		},
	})

	// Broadway
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "N",
		},
		Data: map[string]interface{}{
			"Colour": "#FCCC0A",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "Q",
		},
		Data: map[string]interface{}{
			"Colour": "#FCCC0A",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "R",
		},
		Data: map[string]interface{}{
			"Colour": "#FCCC0A",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "W",
		},
		Data: map[string]interface{}{
			"Colour": "#FCCC0A",
		},
	})

	// Shuttles
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "S",
		},
		Data: map[string]interface{}{
			"Colour": "#808183",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "GS",
		},
		Data: map[string]interface{}{
			"Colour": "#808183",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "FS",
		},
		Data: map[string]interface{}{
			"Colour": "#808183",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "H",
		},
		Data: map[string]interface{}{
			"Colour": "#808183",
		},
	})

	// Staten Island Railway
	transforms = append(transforms, &TransformDefinition{
		Type: "departures.BoardRow",
		Match: map[string]string{
			"Line": "SI",
		},
		Data: map[string]interface{}{
			"Colour": "#0039A6",
		},
	})
}
