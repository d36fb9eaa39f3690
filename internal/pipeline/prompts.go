package pipeline

import (
	"fmt"
	"strings"
)

// instruction builders for the image model. The wording leans hard on
// identity preservation and realistic results; the model follows these far
// more reliably than terse prompts.

func buildTransformInstruction(style, color, audience string) string {
	var b strings.Builder

	b.WriteString(`IMPORTANT: This is an AI beauty transformation that must prioritize user wellbeing and ethical standards.

CORE REQUIREMENTS:
1. PRESERVE IDENTITY: Only change the hair. Keep all facial features, skin tone, and identity markers identical.
2. NATURAL RESULTS: Avoid unrealistic "perfect" appearances. Aim for achievable, realistic styling.
3. CULTURAL SENSITIVITY: Respect the cultural significance of hairstyles.
4. AUTHENTIC BEAUTY: Enhance the user's natural beauty rather than conforming to narrow beauty standards.

`)
	fmt.Fprintf(&b, "Transform the %s's hairstyle to: %s", audience, style)

	if color != "" {
		fmt.Fprintf(&b, " with %s coloring", color)
	}

	b.WriteString(`

ETHICAL GUIDELINES:
- Maintain realistic proportions and natural hair movement
- Preserve ethnic characteristics and natural features
- Avoid overly glamorous or unattainable styling
- Focus on how this style complements the user's unique features
- Ensure the result looks like something achievable at a salon

The result should inspire confidence while celebrating the user's natural beauty.`)

	return b.String()
}

func buildRecolorInstruction(color string) string {
	if color == "" {
		return "Restore the hair to a natural color that harmonizes with the person's features and skin tone. The result should look healthy and achievable."
	}

	return fmt.Sprintf("Change the hair color to %s. IMPORTANT: Only modify the hair color while preserving the natural hair texture and maintaining realistic coloring that complements the person's skin tone and features. Avoid artificial or overly processed-looking colors.", color)
}

const enhanceInstruction = `TECHNICAL PHOTO OPTIMIZATION for AI hairstyle analysis:

Your task: Optimize this photo's technical quality while preserving the person's authentic appearance.

IMPROVEMENTS TO MAKE:
- Replace background with clean, neutral studio backdrop (soft grey/white)
- Apply professional studio lighting to enhance facial feature visibility for AI
- Reduce image noise, blur, or compression artifacts
- Increase overall sharpness and clarity
- Optimize contrast and brightness for consistent AI processing
- Ensure the person's face is well-lit and clearly defined

CRITICAL RULES - DO NOT CHANGE:
- Facial features, bone structure, or proportions
- Skin texture, wrinkles, or natural characteristics
- Person's identity, age, or ethnic features
- Expression or head position
- Any "beauty" improvements - focus only on technical quality

GOAL: Same authentic person, professional photo quality for optimal AI hairstyle analysis.`
