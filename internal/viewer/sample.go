package viewer

// Sample models for the demo browser and the test suites.

// SampleGearbox builds a small two-stage gearbox assembly.
func SampleGearbox() *MemoryEngine {
	e := NewMemoryEngine()
	root := e.LoadModel("Gearbox", "Gearbox Assembly")
	e.SetProperties(root, []Property{
		{Name: "Author", Value: "drivetrain team"},
		{Name: "Revision", Value: "C"},
		{Name: "Mass", Value: "14.2 kg"},
	})
	e.SetDescription(root, "# Gearbox Assembly\n\nTwo-stage reduction gearbox. "+
		"Expand the housing and gear train to inspect individual parts.\n")

	housing := e.AddNode(root, "Housing", KindAssembly)
	e.AddNode(housing, "Housing Upper", KindPart)
	e.AddNode(housing, "Housing Lower", KindPart)
	gasket := e.AddNode(housing, "Gasket", KindPart)
	e.SetProperties(gasket, []Property{
		{Name: "Material", Value: "Nitrile"},
		{Name: "Thickness", Value: "0.8 mm"},
	})

	train := e.AddNode(root, "Gear Train", KindAssembly)
	input := e.AddNode(train, "Input Shaft", KindAssembly)
	e.AddNode(input, "Shaft", KindPart)
	e.AddNode(input, "Pinion 17T", KindPart)
	e.AddNode(input, "Bearing 6203", KindPart)
	output := e.AddNode(train, "Output Shaft", KindAssembly)
	e.AddNode(output, "Shaft", KindPart)
	gear := e.AddNode(output, "Gear 64T", KindPart)
	e.SetProperties(gear, []Property{
		{Name: "Material", Value: "16MnCr5"},
		{Name: "Teeth", Value: "64"},
		{Name: "Module", Value: "2.0"},
	})
	e.SetDescription(gear, "## Gear 64T\n\nCase-hardened output gear. "+
		"Mates with *Pinion 17T* for a 3.76:1 first-stage ratio.\n")
	e.AddNode(output, "Bearing 6205", KindPart)

	fasteners := e.AddNode(root, "Fasteners", KindAssembly)
	e.AddNode(fasteners, "Bolt M6x30 (x8)", KindPart)
	e.AddNode(fasteners, "Dowel Pin 6mm (x2)", KindPart)

	return e
}

// SamplePump builds a small centrifugal pump assembly.
func SamplePump() *MemoryEngine {
	e := NewMemoryEngine()
	root := e.LoadModel("Centrifugal Pump", "Centrifugal Pump")
	e.SetProperties(root, []Property{
		{Name: "Author", Value: "fluids team"},
		{Name: "Revision", Value: "A"},
	})
	e.SetDescription(root, "# Centrifugal Pump\n\nSingle-stage pump with a "+
		"closed impeller.\n")

	volute := e.AddNode(root, "Volute", KindAssembly)
	e.AddNode(volute, "Casing", KindPart)
	e.AddNode(volute, "Suction Flange", KindPart)
	e.AddNode(volute, "Discharge Flange", KindPart)

	rotor := e.AddNode(root, "Rotor", KindAssembly)
	impeller := e.AddNode(rotor, "Impeller", KindPart)
	e.SetProperties(impeller, []Property{
		{Name: "Material", Value: "Bronze C95400"},
		{Name: "Vanes", Value: "6"},
	})
	e.AddNode(rotor, "Shaft", KindPart)
	e.AddNode(rotor, "Mechanical Seal", KindPart)

	return e
}

// SampleNames lists the demo models in menu order.
func SampleNames() []string {
	return []string{"Gearbox", "Centrifugal Pump"}
}

// SampleByName returns the demo engine for a menu label, defaulting to the
// gearbox.
func SampleByName(name string) *MemoryEngine {
	if name == "Centrifugal Pump" {
		return SamplePump()
	}
	return SampleGearbox()
}
