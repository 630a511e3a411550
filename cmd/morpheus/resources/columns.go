package resources

import (
	"strings"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/display"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/prompt"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/utils"
)

// Shared columns and option types.

func col(header, path string) display.Column {
	return display.Column{Header: header, Path: path}
}

func dateCol(header, path string) display.Column {
	return display.Column{Header: header, Value: func(r map[string]any) string {
		return utils.FormatDate(utils.GetPath(r, path))
	}}
}

// ageCol shows a timestamp relative to now.
func ageCol(header, path string) display.Column {
	return display.Column{Header: header, Value: func(r map[string]any) string {
		return utils.FormatAge(utils.GetPath(r, path))
	}}
}

func currencyCol(header, path string) display.Column {
	return display.Column{Header: header, Value: func(r map[string]any) string {
		v := utils.GetPath(r, path)
		if v == nil {
			return ""
		}
		return utils.FormatCurrency(utils.ToFloat(v), utils.GetString(r, "currency"))
	}}
}

// namesCol joins the names of an array of objects.
func namesCol(header, path, field string) display.Column {
	return display.Column{Header: header, Value: func(r map[string]any) string {
		var names []string
		for _, item := range utils.GetMapSlice(r, path) {
			names = append(names, utils.GetPathString(item, field))
		}
		return strings.Join(names, ", ")
	}}
}

var (
	idCol          = col("ID", "id")
	nameCol        = col("Name", "name")
	descriptionCol = col("Description", "description")
	createdCol     = dateCol("Created", "dateCreated")
	updatedCol     = ageCol("Updated", "lastUpdated")
)

var visibilityOptions = []prompt.SelectOption{
	{Name: "Private", Value: "private"},
	{Name: "Public", Value: "public"},
}

func nameOption(label string) prompt.OptionType {
	return prompt.OptionType{FieldName: "name", FieldLabel: "Name", Required: true, Description: label + " name"}
}

func descriptionOption() prompt.OptionType {
	return prompt.OptionType{FieldName: "description", FieldLabel: "Description", Type: prompt.TextArea}
}

func visibilityOption() prompt.OptionType {
	return prompt.OptionType{FieldName: "visibility", FieldLabel: "Visibility", Type: prompt.Select,
		DefaultValue: "private", Options: visibilityOptions}
}

func activeOption(field, label string) prompt.OptionType {
	return prompt.OptionType{FieldName: field, FieldLabel: label, Type: prompt.Checkbox, DefaultValue: "on"}
}
