package outfits

import (
	"testing"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// fieldNames returns the names of the fields in a selection set, in order.
func fieldNames(t *testing.T, set ast.SelectionSet) []string {
	t.Helper()
	names := make([]string, 0, len(set))
	for _, sel := range set {
		field, ok := sel.(*ast.Field)
		if !ok {
			t.Fatalf("selection %v is not a field", sel)
		}
		names = append(names, field.Name)
	}
	return names
}

func Test_Queries_Cases(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantFields []string
	}{
		{
			name:       "item count query",
			query:      itemCountQuery,
			wantFields: []string{"outfit_item_id"},
		},
		{
			name:  "item detail query",
			query: itemDetailQuery,
			wantFields: []string{
				"outfit_item_id", "outfit_id", "item_id",
				"x_position", "y_position", "z_index", "transform", "item",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parser.ParseQuery(&ast.Source{Input: tt.query})
			if err != nil {
				t.Fatalf("query does not parse: %v", err)
			}

			if len(doc.Operations) != 1 {
				t.Fatalf("got %d operations, want 1", len(doc.Operations))
			}
			op := doc.Operations[0]

			if op.Operation != ast.Query {
				t.Errorf("operation type = %q, want query", op.Operation)
			}
			if op.Name != "OutfitItemsByOutfit" {
				t.Errorf("operation name = %q, want OutfitItemsByOutfit", op.Name)
			}

			if len(op.VariableDefinitions) != 1 {
				t.Fatalf("got %d variable definitions, want 1", len(op.VariableDefinitions))
			}
			vd := op.VariableDefinitions[0]
			if vd.Variable != "outfitId" {
				t.Errorf("variable = %q, want outfitId", vd.Variable)
			}
			if vd.Type.NamedType != "Int" || !vd.Type.NonNull {
				t.Errorf("variable type = %+v, want Int!", vd.Type)
			}

			if len(op.SelectionSet) != 1 {
				t.Fatalf("got %d top-level selections, want 1", len(op.SelectionSet))
			}
			root, ok := op.SelectionSet[0].(*ast.Field)
			if !ok {
				t.Fatal("top-level selection is not a field")
			}
			if root.Name != "outfitItemsByOutfit" {
				t.Errorf("root field = %q, want outfitItemsByOutfit", root.Name)
			}

			got := fieldNames(t, root.SelectionSet)
			if len(got) != len(tt.wantFields) {
				t.Fatalf("selected fields = %v, want %v", got, tt.wantFields)
			}
			for i, want := range tt.wantFields {
				if got[i] != want {
					t.Errorf("field %d = %q, want %q", i, got[i], want)
				}
			}
		})
	}
}

func Test_ItemDetailQuery_ItemSubselection(t *testing.T) {
	doc, err := parser.ParseQuery(&ast.Source{Input: itemDetailQuery})
	if err != nil {
		t.Fatalf("query does not parse: %v", err)
	}

	root := doc.Operations[0].SelectionSet[0].(*ast.Field)

	var item *ast.Field
	for _, sel := range root.SelectionSet {
		if f, ok := sel.(*ast.Field); ok && f.Name == "item" {
			item = f
		}
	}
	if item == nil {
		t.Fatal("item field not selected")
	}

	want := []string{"item_id", "name", "image_url"}
	got := fieldNames(t, item.SelectionSet)
	if len(got) != len(want) {
		t.Fatalf("item fields = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item field %d = %q, want %q", i, got[i], want[i])
		}
	}
}
