package quiz

// bank is the full wellbeing survey question pool. Challenges sample from it
// without replacement.
var bank = []Question{
	// Social media
	{ID: 1, Mode: AnswerSingle, Prompt: "On average, how many hours per day do you spend on social media?", Options: []string{"Less than 1 hour", "1-2 hours", "3-4 hours", "5-6 hours", "More than 6 hours"}},
	{ID: 2, Mode: AnswerSingle, Prompt: "How often do you compare yourself to others based on what you see on social media?", Options: []string{"Never", "Rarely", "Sometimes", "Often", "Always"}},
	{ID: 3, Mode: AnswerSingle, Prompt: "After spending time on social media, how do you typically feel about yourself?", Options: []string{"Much more positive", "Slightly more positive", "No change", "Slightly more negative", "Much more negative"}},
	{ID: 4, Mode: AnswerMulti, Prompt: "In the past 6 months, has social media made you feel any of the following? (Select all that apply)", Options: []string{"More confident about myself", "Anxious about my appearance", "Left out or excluded", "Pressure to present a perfect image", "Inspired or motivated", "Inadequate compared to others", "Connected to friends/community", "None of the above"}},

	// Rumination
	{ID: 5, Mode: AnswerSingle, Prompt: "How often do you find yourself replaying past negative experiences in your mind?", Options: []string{"Never or rarely", "Sometimes (1-2 times per week)", "Often (3-5 times per week)", "Very often (almost daily)", "Constantly (multiple times daily)"}},
	{ID: 6, Mode: AnswerSingle, Prompt: "When you think about difficult situations from your past, do you:", Options: []string{"Actively try to understand and move forward", "Think about them occasionally but don't dwell", "Find it difficult to stop thinking about them", "Feel stuck reliving the same thoughts repeatedly", "Intentionally revisit them to process feelings"}},
	{ID: 7, Mode: AnswerSingle, Prompt: "Which statement best describes how you relate to your past negative experiences?", Options: []string{"They are part of my history but don’t define who I am.", "I have learned from them and mostly moved on.", "I think about them regularly, and they influence my current identity.", "They are central to understanding who I am and how I see myself.", "I actively work to not let them define me."}},
	{ID: 8, Mode: AnswerMulti, Prompt: "In the past month, have you repeatedly thought about negative experiences affecting any of the following? (Select all that apply)", Options: []string{"My academic performance", "My relationships with friends/family", "My mood or emotional well-being", "My ability to trust others", "My self-confidence", "My physical health (sleep, appetite, etc.)", "My sense of personal agency/control", "None of the above"}},

	// Body image
	{ID: 9, Mode: AnswerSingle, Prompt: "On average, how many hours per day do you spend viewing beauty, fashion, fitness, or lifestyle content on social media?", Options: []string{"Less than 30 minutes", "30 minutes to 1 hour", "1-2 hours", "3-4 hours", "More than 4 hours"}},
	{ID: 10, Mode: AnswerMulti, Prompt: "Which beauty standards do you feel most pressured by? (Select all that apply)", Options: []string{"Fair/light skin tone", "Slim body type", "Western facial features", "Traditional Indian beauty ideals", "Influencer/celebrity aesthetics", "Perfect skin (acne-free, blemish-free)", "Specific body measurements", "None of the above"}},
	{ID: 11, Mode: AnswerSingle, Prompt: "How often do you compare your appearance to Indian celebrities/influencers?", Options: []string{"Never", "Rarely", "Sometimes", "Often", "Always"}},
	{ID: 12, Mode: AnswerMulti, Prompt: "In the past 6 months, has social media content about beauty/appearance made you feel: (Select all that apply)", Options: []string{"Anxious or stressed about my looks", "Motivated to improve my appearance", "Ashamed of my body or features", "Pressure to use beauty products/treatments", "A desire to edit or filter my photos", "Inadequate or not good enough", "Inspired and confident", "No significant impact"}},

	// Toxic relationships
	{ID: 13, Mode: AnswerMulti, Prompt: "How have toxic relationships affected your mental health? (Select all that apply)", Options: []string{"Anxiety, panic attacks, or constant worry", "Depression or persistent sadness", "Low self-esteem or loss of identity", "Difficulty trusting others", "Post-traumatic stress symptoms", "Sleep disturbances", "Self-harm or suicidal thoughts", "Eating disorders", "Substance use/abuse", "Physical symptoms", "Difficulty setting boundaries", "People-pleasing or fear of conflict", "No significant mental health impact"}},
	{ID: 14, Mode: AnswerSingle, Prompt: "How would you rate your current self-esteem/self-worth in the context of your toxic relationship experiences?", Options: []string{"1. Very Poor", "2. Poor", "3. Neutral", "4. Good", "5. Excellent"}},
	{ID: 15, Mode: AnswerMulti, Prompt: "What factors have made it harder to leave or avoid toxic relationships? (Select all that apply)", Options: []string{"Financial dependence", "Fear of the person’s reaction", "Cultural or religious expectations", "Family/community pressure", "I still loved them/hoped they would change", "Low self-worth", "I didn't recognize it was toxic until later", "Lack of support system", "Shared living situation/children", "Identity factors", "Mental health challenges", "Disability or chronic illness", "Immigration status", "Not applicable"}},
}

var bankByID = func() map[int]Question {
	m := make(map[int]Question, len(bank))
	for _, q := range bank {
		m[q.ID] = q
	}
	return m
}()

// BankSize returns the number of questions in the pool.
func BankSize() int {
	return len(bank)
}
