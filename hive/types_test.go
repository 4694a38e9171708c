package hive

import "testing"

func TestDefaultToCatalog(t *testing.T) {
	db := &Database{}
	tbl := &Table{}
	part := &Partition{}
	pk := &SQLPrimaryKey{}
	fk := &SQLForeignKey{}
	uq := &SQLUniqueConstraint{}
	nn := &SQLNotNullConstraint{}
	dc := &SQLDefaultConstraint{}
	cc := &SQLCheckConstraint{}
	sn := &ISchemaName{}

	tests := []struct {
		name string
		obj  CatalogScoped
		got  func() string
	}{
		{"database", db, func() string { return db.CatalogName }},
		{"table", tbl, func() string { return tbl.CatName }},
		{"partition", part, func() string { return part.CatName }},
		{"primary key", pk, func() string { return pk.CatName }},
		{"foreign key", fk, func() string { return fk.CatName }},
		{"unique constraint", uq, func() string { return uq.CatName }},
		{"not-null constraint", nn, func() string { return nn.CatName }},
		{"default constraint", dc, func() string { return dc.CatName }},
		{"check constraint", cc, func() string { return cc.CatName }},
		{"schema name", sn, func() string { return sn.CatName }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.obj.DefaultToCatalog("spark")
			if got := tt.got(); got != "spark" {
				t.Errorf("catalog after defaulting = %q, want spark", got)
			}
			// A second call must not overwrite the value.
			tt.obj.DefaultToCatalog("other")
			if got := tt.got(); got != "spark" {
				t.Errorf("catalog after second defaulting = %q, set value must stick", got)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	missing := &NoSuchObjectError{Message: "analytics.events"}
	if missing.Error() == "" {
		t.Error("NoSuchObjectError.Error() is empty")
	}
	exists := &AlreadyExistsError{Message: "analytics"}
	if exists.Error() == "" {
		t.Error("AlreadyExistsError.Error() is empty")
	}
}
