package tagger

// DefaultTaxonomy returns the built-in nursing taxonomy used when no
// override file is configured.
func DefaultTaxonomy() *Taxonomy {
	return &Taxonomy{leaves: []Leaf{
		{
			Subject: "Medical-Surgical Nursing", Topic: "Emergency & Critical Care", Subtopic: "Shock",
			Keywords: []string{"shock", "hypovolemic", "cardiogenic", "septic", "anaphylactic"},
		},
		{
			Subject: "Medical-Surgical Nursing", Topic: "Emergency & Critical Care", Subtopic: "CPR",
			Keywords: []string{"cpr", "compression", "ventilation", "resuscitation"},
		},
		{
			Subject: "Medical-Surgical Nursing", Topic: "IV Therapy", Subtopic: "Phlebitis",
			Keywords: []string{"iv", "cannula", "phlebitis", "infiltration", "infusion"},
		},
		{
			Subject: "Pharmacology", Topic: "Drug Safety", Subtopic: "Dosage",
			Keywords: []string{"drug", "dose", "dosage", "mg", "tablet", "injection"},
		},
		{
			Subject: "Pharmacology", Topic: "Drug Safety", Subtopic: "Adverse Effects",
			Keywords: []string{"side effect", "adverse", "toxicity", "contraindication"},
		},
		{
			Subject: "Anatomy & Physiology", Topic: "Human Anatomy", Subtopic: "Bones",
			Keywords: []string{"bone", "femur", "humerus", "vertebra"},
		},
		{
			Subject: "Anatomy & Physiology", Topic: "Human Anatomy", Subtopic: "Neurovascular",
			Keywords: []string{"artery", "vein", "nerve", "plexus"},
		},
		{
			Subject: "Obstetrics & Gynecology", Topic: "Fetal Assessment", Subtopic: "Fetal Position",
			Keywords: []string{"fetal", "position", "lie", "station", "presentation"},
		},
		{
			Subject: "Neurology", Topic: "Assessment", Subtopic: "Glasgow Coma Scale",
			Keywords: []string{"gcs", "glasgow", "coma", "score"},
		},
	}}
}
